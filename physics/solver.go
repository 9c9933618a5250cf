package physics

import "github.com/lixenwraith/impact/vmath"

// Quadratic solves a*t² + b*t + c = 0 for real roots, lo <= hi when a > 0
// a == 0 means no relative approach and yields no root; a negative discriminant yields no root
// A zero discriminant yields the repeated root twice
func Quadratic[S vmath.Scalar](a, b, c S) (lo, hi S, ok bool) {
	if a == 0 {
		return 0, 0, false
	}

	d := b*b - 4*a*c
	if d < 0 {
		return 0, 0, false
	}

	a2 := 2 * a
	if d == 0 {
		r := -b / a2
		return r, r, true
	}

	sq := vmath.Sqrt(d)
	return (-b - sq) / a2, (-b + sq) / a2, true
}

// BroadPhase reports whether two step-scaled states can possibly touch within the step
// Conservative: centres further apart than both displacements plus reach can never meet
func BroadPhase[V vmath.Vector[V, S], S vmath.Scalar](a, b BodyState[V, S], reach S) bool {
	dist := vmath.Distance[V, S](a.Position, b.Position)
	bound := vmath.Length[V, S](a.velocity) + vmath.Length[V, S](b.velocity) + reach
	return !(dist > bound)
}

// SphereSphere finds the smallest t in [0, 1] at which two step-scaled spheres are exactly
// rA + rB apart, solving |Δp + Δv·t|² = R² with Δp = posA - posB, Δv = velA - velB
func SphereSphere[V vmath.Vector[V, S], S vmath.Scalar](a, b BodyState[V, S]) (*Intersection[V, S], Detection) {
	reach := a.Shape.Radius + b.Shape.Radius
	if !BroadPhase(a, b, reach) {
		return nil, DetectRejected
	}

	dp := a.Position.Sub(b.Position)
	dv := a.velocity.Sub(b.velocity)

	t, _, ok := Quadratic(dv.Dot(dv), 2*dp.Dot(dv), dp.Dot(dp)-reach*reach)
	// Negated range check also rejects NaN
	if !ok || !(t >= 0 && t <= 1) {
		return nil, DetectMiss
	}

	self, other := a, b
	self.Position = a.Position.Add(a.velocity.Mul(t))
	other.Position = b.Position.Add(b.velocity.Mul(t))

	return &Intersection[V, S]{
		T:      t,
		Normal: vmath.Normalized[V, S](self.Position.Sub(other.Position)),
		Self:   self,
		Other:  other,
	}, DetectHit
}
