package engine

import (
	"iter"

	"github.com/lixenwraith/impact/physics"
	"github.com/lixenwraith/impact/vmath"
)

// ScalarMomentum sums mass * speed over all bodies
// Not a conserved quantity in general; it holds for head-on equal-mass elastic contacts
func ScalarMomentum[V vmath.Vector[V, S], S vmath.Scalar](bodies iter.Seq2[int, physics.RigidBody[V, S]]) S {
	var sum S
	for _, b := range bodies {
		sum += b.Mass() * vmath.Length[V, S](b.Velocity())
	}
	return sum
}

// LinearMomentum sums mass * velocity over all bodies
func LinearMomentum[V vmath.Vector[V, S], S vmath.Scalar](bodies iter.Seq2[int, physics.RigidBody[V, S]]) V {
	var sum V
	for _, b := range bodies {
		sum = sum.Add(b.Velocity().Mul(b.Mass()))
	}
	return sum
}

// KineticEnergy sums ½ m |v|² over all bodies
func KineticEnergy[V vmath.Vector[V, S], S vmath.Scalar](bodies iter.Seq2[int, physics.RigidBody[V, S]]) S {
	var sum S
	for _, b := range bodies {
		sum += b.Mass() * vmath.LengthSq[V, S](b.Velocity()) / 2
	}
	return sum
}
