package vmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the ordered field element every vector component is expressed in
// float32 and float64 (and named types over them) qualify
type Scalar interface {
	constraints.Float
}

// Sqrt returns the square root of x at the precision of S
func Sqrt[S Scalar](x S) S {
	if f, ok := any(x).(float32); ok {
		return S(math32.Sqrt(f))
	}
	return S(math.Sqrt(float64(x)))
}

// Min returns a if a < b, otherwise b
// Ties resolve to the second argument
func Min[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns a if a > b, otherwise b
func Max[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}

// Abs returns absolute value
func Abs[S Scalar](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf
func IsFinite[S Scalar](x S) bool {
	if f, ok := any(x).(float32); ok {
		return !math32.IsNaN(f) && !math32.IsInf(f, 0)
	}
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
