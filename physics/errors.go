package physics

import "errors"

var (
	// ErrInvalidMass rejects non-positive or non-finite mass at construction
	ErrInvalidMass = errors.New("physics: mass must be finite and > 0")
	// ErrInvalidRadius rejects non-positive or non-finite sphere radius at construction
	ErrInvalidRadius = errors.New("physics: sphere radius must be finite and > 0")
	// ErrInvalidRestitution rejects negative or non-finite restitution at construction
	ErrInvalidRestitution = errors.New("physics: restitution must be finite and >= 0")
	// ErrNotImplemented is returned for any shape pair without an intersection or collision law
	ErrNotImplemented = errors.New("physics: not implemented")
)
