// Package scene describes simulation setups in TOML or YAML and builds engines from them
package scene

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/parameter"
	"github.com/lixenwraith/impact/physics"
	"github.com/lixenwraith/impact/vmath"
)

var (
	ErrInvalidScene  = errors.New("scene: invalid scene")
	ErrUnknownFormat = errors.New("scene: unknown format")
)

// Config is a complete scene: stepping, view and bodies in spawn order
type Config struct {
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation"`
	View       ViewConfig       `toml:"view" yaml:"view"`
	Bodies     []BodyConfig     `toml:"bodies,omitempty" yaml:"bodies,omitempty"`
}

type SimulationConfig struct {
	// Step is simulated time per tick
	Step float64 `toml:"step" yaml:"step"`
	// TickRate is auto-step ticks per second; 0 steps only on request
	TickRate int `toml:"tick_rate" yaml:"tick_rate"`
}

type ViewConfig struct {
	// Scale is terminal rows per world unit
	Scale        float64 `toml:"scale" yaml:"scale"`
	ShowVelocity bool    `toml:"show_velocity" yaml:"show_velocity"`
}

// BodyConfig is one body; omitted fields take DefaultBody values
type BodyConfig struct {
	Shape    string    `toml:"shape,omitempty" yaml:"shape,omitempty"`
	Radius   float64   `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Extents  []float64 `toml:"extents,omitempty" yaml:"extents,omitempty" copier:"-"`
	Mass     float64   `toml:"mass,omitempty" yaml:"mass,omitempty"`
	Position []float64 `toml:"position,omitempty" yaml:"position,omitempty" copier:"-"`
	Velocity []float64 `toml:"velocity,omitempty" yaml:"velocity,omitempty" copier:"-"`
	// Restitution is a pointer so an explicit 0 survives the defaults merge
	Restitution *float64 `toml:"restitution,omitempty" yaml:"restitution,omitempty" copier:"-"`
}

// Default returns the two-sphere demo scene
func Default() Config {
	a := DefaultBody()
	a.Position = clone(parameter.DefaultBodyAPosition)
	a.Velocity = clone(parameter.DefaultBodyAVelocity)

	b := DefaultBody()
	b.Position = clone(parameter.DefaultBodyBPosition)
	b.Velocity = clone(parameter.DefaultBodyBVelocity)

	return Config{
		Simulation: SimulationConfig{
			Step:     parameter.DefaultStep,
			TickRate: parameter.DefaultTickRate,
		},
		View: ViewConfig{
			Scale: parameter.DefaultScale,
		},
		Bodies: []BodyConfig{a, b},
	}
}

// DefaultBody returns a unit-mass elastic sphere at rest at the origin
func DefaultBody() BodyConfig {
	e := parameter.DefaultRestitution
	return BodyConfig{
		Shape:       physics.ShapeSphere.String(),
		Radius:      parameter.DefaultRadius,
		Mass:        parameter.DefaultMass,
		Restitution: &e,
	}
}

// Validate checks everything Build would reject, without building
func (c Config) Validate() error {
	if !vmath.IsFinite(c.Simulation.Step) || c.Simulation.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidScene, c.Simulation.Step)
	}
	if c.Simulation.TickRate < 0 || c.Simulation.TickRate > parameter.MaxTickRate {
		return fmt.Errorf("%w: tick_rate must be in [0, %d], got %d", ErrInvalidScene, parameter.MaxTickRate, c.Simulation.TickRate)
	}
	if !vmath.IsFinite(c.View.Scale) || c.View.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidScene, c.View.Scale)
	}
	for i, b := range c.Bodies {
		if _, err := b.body(); err != nil {
			return fmt.Errorf("%w: body %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// Build validates the scene and returns a simulation with every body spawned in order
func (c Config) Build() (*engine.Simulation[vmath.Vec2, float64], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sim := engine.New[vmath.Vec2, float64]()
	for _, b := range c.Bodies {
		body, err := b.body()
		if err != nil {
			return nil, err
		}
		sim.Spawn(body)
	}
	return sim, nil
}

func (b BodyConfig) body() (*physics.RigidBody[vmath.Vec2, float64], error) {
	kind, err := physics.ParseShapeKind(b.Shape)
	if err != nil {
		return nil, err
	}

	var shape physics.Shape[vmath.Vec2, float64]
	switch kind {
	case physics.ShapeSphere:
		shape = physics.Sphere[vmath.Vec2](b.Radius)
	case physics.ShapeCube:
		ext, err := vec2("extents", b.Extents, false)
		if err != nil {
			return nil, err
		}
		shape = physics.Cube[vmath.Vec2, float64](ext)
	}

	pos, err := vec2("position", b.Position, true)
	if err != nil {
		return nil, err
	}
	vel, err := vec2("velocity", b.Velocity, true)
	if err != nil {
		return nil, err
	}
	e := parameter.DefaultRestitution
	if b.Restitution != nil {
		e = *b.Restitution
	}
	return physics.NewRigidBody(shape, b.Mass, pos, vel, e)
}

func clone(v [2]float64) []float64 {
	return []float64{v[0], v[1]}
}

// vec2 reads an [x, y] list; an empty list is the zero vector when optional
func vec2(name string, v []float64, optional bool) (vmath.Vec2, error) {
	switch {
	case len(v) == 0 && optional:
		return vmath.Vec2{}, nil
	case len(v) != 2:
		return vmath.Vec2{}, fmt.Errorf("%s needs 2 components, got %d", name, len(v))
	}
	out := vmath.V2(v[0], v[1])
	if !vmath.IsFinite(out.X()) || !vmath.IsFinite(out.Y()) {
		return vmath.Vec2{}, fmt.Errorf("%s must be finite, got %v", name, v)
	}
	return out, nil
}
