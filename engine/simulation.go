package engine

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/lixenwraith/impact/physics"
	"github.com/lixenwraith/impact/vmath"
)

// ErrInvalidStep is returned by Tick for a negative or non-finite step length
var ErrInvalidStep = errors.New("engine: invalid step")

// TickStats describes the last completed tick
type TickStats[S vmath.Scalar] struct {
	Tick uint64

	// Pairs examined in the detection phase
	Pairs int
	// Rejected pairs never reached the time-of-impact solve
	Rejected int
	// Solved counts quadratic solves, Pairs - Rejected on success
	Solved int
	// Contacts found this tick, at most one per pair
	Contacts int
	// Resolved counts bodies that moved through a contact instead of translating freely
	Resolved int

	PeakImpulse S
}

// Simulation owns an ordered set of bodies and advances them in fixed steps
// Insertion order is the pairing and iteration order; bodies are never removed or reordered
type Simulation[V vmath.Vector[V, S], S vmath.Scalar] struct {
	bodies []*physics.RigidBody[V, S]
	tick   uint64
	stats  TickStats[S]
	logger *log.Logger
}

// New returns an empty simulation with logging discarded
func New[V vmath.Vector[V, S], S vmath.Scalar]() *Simulation[V, S] {
	return &Simulation[V, S]{
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger redirects tick diagnostics, nil restores the discard logger
func (s *Simulation[V, S]) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.logger = l
}

// Spawn appends a body and returns its index; the simulation takes ownership of b
func (s *Simulation[V, S]) Spawn(b *physics.RigidBody[V, S]) int {
	s.bodies = append(s.bodies, b)
	return len(s.bodies) - 1
}

func (s *Simulation[V, S]) Len() int { return len(s.bodies) }

// At returns a copy of the body at index i
func (s *Simulation[V, S]) At(i int) physics.RigidBody[V, S] {
	return *s.bodies[i]
}

// Objects yields copies of every body in insertion order
// Mutating a yielded copy never affects the simulation
func (s *Simulation[V, S]) Objects() iter.Seq2[int, physics.RigidBody[V, S]] {
	return func(yield func(int, physics.RigidBody[V, S]) bool) {
		for i, b := range s.bodies {
			if !yield(i, *b) {
				return
			}
		}
	}
}

// TickCount returns the number of completed ticks
func (s *Simulation[V, S]) TickCount() uint64 { return s.tick }

// LastStats returns the stats of the last completed tick
func (s *Simulation[V, S]) LastStats() TickStats[S] { return s.stats }

// Tick advances every body by step
// Detection over all pairs runs to completion before any body moves. A detection error
// discards every pending contact and returns with no body moved. Resolution only sees contacts
// detection produced, and every pair detection accepts has a collision law; if resolution still
// fails, bodies earlier in order have already moved and the remaining contacts are discarded.
func (s *Simulation[V, S]) Tick(step S) error {
	if !vmath.IsFinite(step) || step < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	stats := TickStats[S]{Tick: s.tick + 1}

	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			stats.Pairs++
			d, err := s.bodies[i].IntersectTick(s.bodies[j], step)
			if err != nil {
				s.dropPending()
				s.logger.Printf("tick %d aborted at pair (%d, %d): %v", stats.Tick, i, j, err)
				return fmt.Errorf("engine: tick %d pair (%d, %d): %w", stats.Tick, i, j, err)
			}
			switch d {
			case physics.DetectRejected:
				stats.Rejected++
			case physics.DetectMiss:
				stats.Solved++
			case physics.DetectHit:
				stats.Solved++
				stats.Contacts++
			}
		}
	}

	for i, b := range s.bodies {
		_, contact := b.Pending()
		impulse, err := b.MoveTick(step)
		if err != nil {
			s.dropPending()
			return fmt.Errorf("engine: tick %d body %d: %w", stats.Tick, i, err)
		}
		if contact {
			stats.Resolved++
		}
		stats.PeakImpulse = vmath.Max(stats.PeakImpulse, impulse)
	}

	s.tick = stats.Tick
	s.stats = stats
	if stats.Contacts > 0 {
		s.logger.Printf("tick %d: %d contacts, %d bodies resolved, peak impulse %.4g",
			stats.Tick, stats.Contacts, stats.Resolved, float64(stats.PeakImpulse))
	}
	return nil
}

func (s *Simulation[V, S]) dropPending() {
	for _, b := range s.bodies {
		b.DropPending()
	}
}
