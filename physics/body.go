package physics

import "github.com/lixenwraith/impact/vmath"

// RigidBody is a body state plus at most one pending contact for the current step
//
// Per step: idle -> (IntersectTick keeps the earliest contact) -> MoveTick resolves or
// translates and clears the slot -> idle
type RigidBody[V vmath.Vector[V, S], S vmath.Scalar] struct {
	state   BodyState[V, S]
	pending *Intersection[V, S]
}

// NewRigidBody validates and returns a body at rest in no contact
func NewRigidBody[V vmath.Vector[V, S], S vmath.Scalar](shape Shape[V, S], mass S, pos, vel V, restitution S) (*RigidBody[V, S], error) {
	state := NewBodyState(shape, mass, pos, vel, restitution)
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return &RigidBody[V, S]{state: state}, nil
}

// Read-only accessors, usable on the copies handed out by Simulation.At and Objects

func (b RigidBody[V, S]) Shape() Shape[V, S] { return b.state.Shape }
func (b RigidBody[V, S]) Mass() S            { return b.state.Mass }
func (b RigidBody[V, S]) Position() V        { return b.state.Position }
func (b RigidBody[V, S]) Velocity() V        { return b.state.ActualVelocity() }
func (b RigidBody[V, S]) Restitution() S     { return b.state.Restitution }

// State returns a copy of the unscaled state
func (b RigidBody[V, S]) State() BodyState[V, S] { return b.state }

// Pending returns the contact currently held for this step, if any
func (b RigidBody[V, S]) Pending() (Intersection[V, S], bool) {
	if b.pending == nil {
		return Intersection[V, S]{}, false
	}
	return *b.pending, true
}

// DropPending discards the held contact without moving the body
func (b *RigidBody[V, S]) DropPending() {
	b.pending = nil
}

// IntersectTick tests this body against other over a step and offers any contact to both
// Each body keeps only its earliest contact; a later candidate never replaces an earlier one
func (b *RigidBody[V, S]) IntersectTick(other *RigidBody[V, S], step S) (Detection, error) {
	i, d, err := Intersect(b.state.ApplyDelta(step), other.state.ApplyDelta(step))
	if err != nil {
		return d, err
	}
	if i != nil {
		inv := i.Invert()
		other.offer(&inv)
		b.offer(i)
	}
	return d, nil
}

// offer keeps i only if strictly earlier than the held contact
func (b *RigidBody[V, S]) offer(i *Intersection[V, S]) {
	if b.pending == nil || i.T < b.pending.T {
		b.pending = i
	}
}

// MoveTick resolves the held contact or translates by velocity * step, then clears the slot
// Returns the impulse magnitude applied to this body
func (b *RigidBody[V, S]) MoveTick(step S) (S, error) {
	i := b.pending
	b.pending = nil

	if i == nil {
		b.state.Translate(step)
		return 0, nil
	}
	return Collide(i, &b.state, step)
}
