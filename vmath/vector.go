package vmath

// Vector is the minimal arithmetic a position/velocity type must provide
// Dimension and precision are left to the implementation; V is the implementing type itself
type Vector[V any, S Scalar] interface {
	Add(V) V
	Sub(V) V
	Mul(S) V
	Div(S) V
	Dot(V) S
}

// LengthSq returns dot(v, v), always >= 0
func LengthSq[V Vector[V, S], S Scalar](v V) S {
	return v.Dot(v)
}

// Length returns Euclidean length sqrt(dot(v, v))
func Length[V Vector[V, S], S Scalar](v V) S {
	return Sqrt(LengthSq[V, S](v))
}

// Normalized returns unit vector, zero-safe
// A zero-length input is returned unchanged
func Normalized[V Vector[V, S], S Scalar](v V) V {
	lsq := LengthSq[V, S](v)
	if lsq == 0 {
		return v
	}
	return v.Div(Sqrt(lsq))
}

// Reflect returns v reflected off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func Reflect[V Vector[V, S], S Scalar](v, n V) V {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Distance returns the Euclidean distance between two points
func Distance[V Vector[V, S], S Scalar](a, b V) S {
	return Length[V, S](a.Sub(b))
}
