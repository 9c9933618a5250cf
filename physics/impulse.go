package physics

import "github.com/lixenwraith/impact/vmath"

// resolveSphereSphere advances self through the step, splitting motion at the contact
//
// Law, with n pointing from the other body toward self:
//   - cr = min(restitutionA, restitutionB)
//   - vn = dot(ub - ua, n), positive while the bodies close along n
//   - j = -(1 + cr) * vn / (1/mA + 1/mB), applied only when vn > 0
//   - ua' = ua - n * j / mA
//
// The mirrored call on the inverted intersection yields ub' = ub + n * j / mB
func resolveSphereSphere[V vmath.Vector[V, S], S vmath.Scalar](i *Intersection[V, S], self *BodyState[V, S], step S) S {
	other := i.Other.UndoDelta()
	cr := vmath.Min(self.Restitution, other.Restitution)
	ua := self.ActualVelocity()
	ub := other.Velocity()
	n := i.Normal

	vn := ub.Sub(ua).Dot(n)

	// Up to contact with the incoming velocity
	self.Translate(i.T * step)

	var impulse S
	// Separating or resting pairs keep their velocity, collision never adds energy to them
	if vn > 0 {
		j := -(1 + cr) * vn / (1/self.Mass + 1/other.Mass)
		self.SetVelocity(ua.Sub(n.Mul(j / self.Mass)))
		impulse = -j
	}

	// Remainder of the step with the outgoing velocity
	self.Translate((1 - i.T) * step)

	return impulse
}
