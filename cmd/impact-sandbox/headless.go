package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/scene"
	"github.com/lixenwraith/impact/vmath"
)

// defaultHeadlessTicks is used when output is not a terminal and no tick count was given
const defaultHeadlessTicks = 8

// runHeadless steps the scene without a screen, writing one summary line per tick and one line
// per body. Stops at the first tick error.
func runHeadless(w io.Writer, cfg scene.Config, ticks int) error {
	sim, err := cfg.Build()
	if err != nil {
		return err
	}

	step := cfg.Simulation.Step
	writeBodies(w, sim)
	for range ticks {
		if err := sim.Tick(step); err != nil {
			return err
		}
		stats := sim.LastStats()
		fmt.Fprintf(w, "tick %d contacts %d peak %.6g momentum %.6f energy %.6f\n",
			stats.Tick, stats.Contacts, stats.PeakImpulse,
			engine.ScalarMomentum(sim.Objects()), engine.KineticEnergy(sim.Objects()))
		writeBodies(w, sim)
	}
	return nil
}

func writeBodies(w io.Writer, sim *engine.Simulation[vmath.Vec2, float64]) {
	for i, b := range sim.Objects() {
		p, v := b.Position(), b.Velocity()
		fmt.Fprintf(w, "  body %d pos (%.6f, %.6f) vel (%.6f, %.6f)\n", i, p.X(), p.Y(), v.X(), v.Y())
	}
}
