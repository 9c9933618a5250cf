package engine

import "time"

// TimeSource supplies wall time to the stepper
type TimeSource interface {
	Now() time.Time
}

// TimeProvider reads the system monotonic clock
type TimeProvider struct{}

// NewTimeProvider returns the system time source
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
