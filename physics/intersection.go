package physics

import "github.com/lixenwraith/impact/vmath"

// Detection reports how far a pair test got
type Detection uint8

const (
	// DetectRejected means the broad phase proved no contact is possible this step
	DetectRejected Detection = iota
	// DetectMiss means the time-of-impact solve ran and found no contact in [0, 1]
	DetectMiss
	// DetectHit means a contact was found
	DetectHit
)

func (d Detection) String() string {
	switch d {
	case DetectRejected:
		return "rejected"
	case DetectMiss:
		return "miss"
	case DetectHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Intersection is a contact found during detection, consumed once by resolution
// Self and Other are step-scaled snapshots with positions advanced to the contact point
type Intersection[V vmath.Vector[V, S], S vmath.Scalar] struct {
	// T is the fraction of the step in [0, 1] at which contact happens
	T S
	// Normal is the unit contact normal pointing from Other toward Self
	Normal V
	Self   BodyState[V, S]
	Other  BodyState[V, S]
}

// Invert returns the same contact seen from the other body
func (i Intersection[V, S]) Invert() Intersection[V, S] {
	return Intersection[V, S]{
		T:      i.T,
		Normal: i.Normal.Mul(-1),
		Self:   i.Other,
		Other:  i.Self,
	}
}
