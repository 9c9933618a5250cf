package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is tried by LoadAuto when no path is given
const DefaultPath = "scene.toml"

// Format selects the scene file encoding
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

type codec struct {
	decode func([]byte, any) error
	encode func(any) ([]byte, error)
}

var codecs = map[Format]codec{
	FormatTOML: {
		decode: func(data []byte, v any) error {
			d := toml.NewDecoder(bytes.NewReader(data))
			d.DisallowUnknownFields()
			return d.Decode(v)
		},
		encode: toml.Marshal,
	},
	FormatYAML: {
		decode: func(data []byte, v any) error {
			d := yaml.NewDecoder(bytes.NewReader(data))
			d.KnownFields(true)
			// Empty documents decode to the zero config
			if err := d.Decode(v); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		},
		encode: yaml.Marshal,
	},
}

// FormatOf picks the format from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// document is a scene file as written; pointers tell an explicit zero from an omitted key
type document struct {
	Simulation simulationDocument `toml:"simulation" yaml:"simulation"`
	View       viewDocument       `toml:"view" yaml:"view"`
	Bodies     []bodyDocument     `toml:"bodies" yaml:"bodies"`
}

type simulationDocument struct {
	Step     *float64 `toml:"step" yaml:"step"`
	TickRate *int     `toml:"tick_rate" yaml:"tick_rate"`
}

type viewDocument struct {
	Scale        *float64 `toml:"scale" yaml:"scale"`
	ShowVelocity *bool    `toml:"show_velocity" yaml:"show_velocity"`
}

type bodyDocument struct {
	Shape       *string   `toml:"shape" yaml:"shape"`
	Radius      *float64  `toml:"radius" yaml:"radius"`
	Extents     []float64 `toml:"extents" yaml:"extents"`
	Mass        *float64  `toml:"mass" yaml:"mass"`
	Position    []float64 `toml:"position" yaml:"position"`
	Velocity    []float64 `toml:"velocity" yaml:"velocity"`
	Restitution *float64  `toml:"restitution" yaml:"restitution"`
}

func decodeDocument(data []byte, f Format) (document, error) {
	c, ok := codecs[f]
	if !ok {
		return document{}, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	var doc document
	if err := c.decode(data, &doc); err != nil {
		return document{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidScene, f, err)
	}
	return doc, nil
}

// Decode reads a scene as written, without defaults
func Decode(data []byte, f Format) (Config, error) {
	doc, err := decodeDocument(data, f)
	if err != nil {
		return Config{}, err
	}
	return merge(Config{}, doc, func() BodyConfig { return BodyConfig{} })
}

// Encode writes a scene in the given format
func Encode(cfg Config, f Format) ([]byte, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return c.encode(cfg)
}

// Parse decodes a scene and fills everything it omits from Default
// A scene listing any bodies replaces the default bodies; each listed body is completed from
// DefaultBody. Keys that are present override the defaults even when zero, so Validate sees them.
func Parse(data []byte, f Format) (Config, error) {
	doc, err := decodeDocument(data, f)
	if err != nil {
		return Config{}, err
	}
	return merge(Default(), doc, DefaultBody)
}

// merge overlays the keys present in doc onto base; listed bodies start from newBody
func merge(base Config, doc document, newBody func() BodyConfig) (Config, error) {
	opt := copier.Option{IgnoreEmpty: true, DeepCopy: true}

	if err := copier.CopyWithOption(&base.Simulation, &doc.Simulation, opt); err != nil {
		return Config{}, fmt.Errorf("scene: merge simulation: %w", err)
	}
	if err := copier.CopyWithOption(&base.View, &doc.View, opt); err != nil {
		return Config{}, fmt.Errorf("scene: merge view: %w", err)
	}

	if len(doc.Bodies) > 0 {
		base.Bodies = make([]BodyConfig, len(doc.Bodies))
		for i := range doc.Bodies {
			b, o := newBody(), doc.Bodies[i]
			if err := copier.CopyWithOption(&b, &o, opt); err != nil {
				return Config{}, fmt.Errorf("scene: merge body %d: %w", i, err)
			}
			// List and pointer fields are taken whole
			if len(o.Extents) > 0 {
				b.Extents = append([]float64(nil), o.Extents...)
			}
			if len(o.Position) > 0 {
				b.Position = append([]float64(nil), o.Position...)
			}
			if len(o.Velocity) > 0 {
				b.Velocity = append([]float64(nil), o.Velocity...)
			}
			if o.Restitution != nil {
				e := *o.Restitution
				b.Restitution = &e
			}
			base.Bodies[i] = b
		}
	}
	return base, nil
}

// Load reads, completes and validates the scene at path
func Load(path string) (Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	cfg, err := Parse(data, f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadAuto loads with priority: customPath > DefaultPath in the working directory > Default
// The returned path is empty when the built-in scene is used
func LoadAuto(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := Load(customPath)
		return cfg, customPath, err
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		cfg, err := Load(DefaultPath)
		return cfg, DefaultPath, err
	}
	return Default(), "", nil
}
