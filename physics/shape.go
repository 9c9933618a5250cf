package physics

import (
	"fmt"

	"github.com/lixenwraith/impact/vmath"
)

// ShapeKind tags the Shape variant
type ShapeKind uint8

const (
	// ShapeSphere is a ball of Radius around the body position
	ShapeSphere ShapeKind = iota
	// ShapeCube is an axis-aligned box of Extents; declared, no intersection or collision law yet
	ShapeCube
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeCube:
		return "cube"
	default:
		return fmt.Sprintf("shape(%d)", uint8(k))
	}
}

// ParseShapeKind maps the String form back to a ShapeKind
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "sphere":
		return ShapeSphere, nil
	case "cube":
		return ShapeCube, nil
	default:
		return 0, fmt.Errorf("physics: unknown shape %q", s)
	}
}

// Shape is a closed tagged union; only the field matching Kind is meaningful
// Shapes are values, copied into every state snapshot
type Shape[V any, S vmath.Scalar] struct {
	Kind    ShapeKind
	Radius  S
	Extents V
}

// Sphere returns a sphere shape of radius r
// V must be given explicitly: Sphere[vmath.Vec2](0.5)
func Sphere[V any, S vmath.Scalar](r S) Shape[V, S] {
	return Shape[V, S]{Kind: ShapeSphere, Radius: r}
}

// Cube returns a box shape with the given extents
func Cube[V any, S vmath.Scalar](extents V) Shape[V, S] {
	return Shape[V, S]{Kind: ShapeCube, Extents: extents}
}

// Validate checks construction preconditions
// Cubes pass: they are only rejected when a collision query reaches them
func (s Shape[V, S]) Validate() error {
	switch s.Kind {
	case ShapeSphere:
		if !vmath.IsFinite(s.Radius) || s.Radius <= 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidRadius, s.Radius)
		}
		return nil
	case ShapeCube:
		return nil
	default:
		return fmt.Errorf("%w: shape kind %s", ErrNotImplemented, s.Kind)
	}
}

// BoundingRadius returns the radius of a sphere enclosing the shape
func (s Shape[V, S]) BoundingRadius() (S, error) {
	if s.Kind == ShapeSphere {
		return s.Radius, nil
	}
	return 0, fmt.Errorf("%w: bounding radius of %s", ErrNotImplemented, s.Kind)
}

// shapePair keys the double-dispatch tables
type shapePair struct {
	a, b ShapeKind
}

func pairOf(a, b ShapeKind) shapePair {
	return shapePair{a: a, b: b}
}

func (p shapePair) String() string {
	return p.a.String() + "-" + p.b.String()
}

var (
	pairSphereSphere = pairOf(ShapeSphere, ShapeSphere)
)

// Intersect finds the earliest contact between two step-scaled states
// Returns nil intersection when the pair does not touch this step; unsupported pairs return ErrNotImplemented
func Intersect[V vmath.Vector[V, S], S vmath.Scalar](a, b BodyState[V, S]) (*Intersection[V, S], Detection, error) {
	switch p := pairOf(a.Shape.Kind, b.Shape.Kind); p {
	case pairSphereSphere:
		i, d := SphereSphere(a, b)
		return i, d, nil
	default:
		return nil, DetectMiss, fmt.Errorf("%w: intersect %s", ErrNotImplemented, p)
	}
}

// Collide applies the collision law for the pending intersection to self
// self must be the unscaled state of the body the intersection belongs to
// Returns the impulse magnitude applied (0 when the pair was already separating)
func Collide[V vmath.Vector[V, S], S vmath.Scalar](i *Intersection[V, S], self *BodyState[V, S], step S) (S, error) {
	switch p := pairOf(i.Self.Shape.Kind, i.Other.Shape.Kind); p {
	case pairSphereSphere:
		return resolveSphereSphere(i, self, step), nil
	default:
		return 0, fmt.Errorf("%w: collide %s", ErrNotImplemented, p)
	}
}
