package physics

import (
	"fmt"

	"github.com/lixenwraith/impact/vmath"
)

// BodyState holds per-body physical attributes
// velocity is either the actual per-unit-time velocity or, on copies made by ApplyDelta,
// the displacement over one step; actualVelocity always holds the unscaled value
type BodyState[V vmath.Vector[V, S], S vmath.Scalar] struct {
	Shape       Shape[V, S]
	Mass        S
	Position    V
	Restitution S

	velocity       V
	actualVelocity V
}

// NewBodyState returns an unscaled state
func NewBodyState[V vmath.Vector[V, S], S vmath.Scalar](shape Shape[V, S], mass S, pos, vel V, restitution S) BodyState[V, S] {
	return BodyState[V, S]{
		Shape:          shape,
		Mass:           mass,
		Position:       pos,
		Restitution:    restitution,
		velocity:       vel,
		actualVelocity: vel,
	}
}

// Validate checks construction preconditions
func (s BodyState[V, S]) Validate() error {
	if err := s.Shape.Validate(); err != nil {
		return err
	}
	if !vmath.IsFinite(s.Mass) || s.Mass <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, s.Mass)
	}
	if !vmath.IsFinite(s.Restitution) || s.Restitution < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRestitution, s.Restitution)
	}
	return nil
}

// ApplyDelta returns a copy whose velocity is scaled by the step length
// The unscaled velocity is kept for UndoDelta and impulse math
func (s BodyState[V, S]) ApplyDelta(step S) BodyState[V, S] {
	s.actualVelocity = s.velocity
	s.velocity = s.velocity.Mul(step)
	return s
}

// UndoDelta returns a copy with the unscaled velocity restored
func (s BodyState[V, S]) UndoDelta() BodyState[V, S] {
	s.velocity = s.actualVelocity
	return s
}

// Velocity returns the current view: per-unit-time, or per-step after ApplyDelta
func (s BodyState[V, S]) Velocity() V {
	return s.velocity
}

// ActualVelocity returns the unscaled velocity regardless of view
func (s BodyState[V, S]) ActualVelocity() V {
	return s.actualVelocity
}

// SetVelocity replaces both views
func (s *BodyState[V, S]) SetVelocity(v V) {
	s.velocity = v
	s.actualVelocity = v
}

// Translate moves the position by velocity * dt using the current view
func (s *BodyState[V, S]) Translate(dt S) {
	s.Position = s.Position.Add(s.velocity.Mul(dt))
}
