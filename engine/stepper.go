package engine

import (
	"sync/atomic"
	"time"
)

// maxCatchUp bounds the ticks released by a single Due call after a stall
const maxCatchUp = 4

// Stepper paces automatic ticks at a fixed rate with pause support
// Due is called from the driving loop; Pause, Resume and Toggle are safe from any goroutine
type Stepper struct {
	clock    TimeSource
	interval time.Duration

	// next is the deadline of the next tick, zero until the first Due after start or resume
	next    time.Time
	paused  atomic.Bool
	restart atomic.Bool
}

// NewStepper returns a stepper releasing rate ticks per second
// A non-positive rate yields a stepper that never releases ticks (manual stepping)
func NewStepper(clock TimeSource, rate int) *Stepper {
	s := &Stepper{clock: clock}
	if rate > 0 {
		s.interval = time.Second / time.Duration(rate)
	}
	s.paused.Store(true)
	return s
}

// Interval returns the tick period, zero for manual steppers
func (s *Stepper) Interval() time.Duration { return s.interval }

// Paused reports whether automatic ticks are held
func (s *Stepper) Paused() bool { return s.paused.Load() }

// Pause holds automatic ticks
func (s *Stepper) Pause() {
	s.paused.Store(true)
}

// Resume releases automatic ticks, measured from the next Due call
func (s *Stepper) Resume() {
	if s.paused.CompareAndSwap(true, false) {
		s.restart.Store(true)
	}
}

// Toggle flips the pause state and returns the new state
func (s *Stepper) Toggle() bool {
	if s.paused.Load() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// Due returns how many ticks are owed since the previous call
// Deadlines advance by whole intervals so pacing does not drift; after a long stall at most
// maxCatchUp ticks are released and the schedule restarts from now
func (s *Stepper) Due() int {
	if s.interval <= 0 || s.paused.Load() {
		return 0
	}

	now := s.clock.Now()
	if s.restart.Swap(false) || s.next.IsZero() {
		s.next = now.Add(s.interval)
		return 0
	}

	n := 0
	for !now.Before(s.next) {
		if n == maxCatchUp {
			s.next = now.Add(s.interval)
			break
		}
		n++
		s.next = s.next.Add(s.interval)
	}
	return n
}
