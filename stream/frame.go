// Package stream broadcasts simulation frames to websocket clients
package stream

import (
	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/physics"
	"github.com/lixenwraith/impact/vmath"
)

// Frame is one simulation snapshot as sent on the wire
type Frame struct {
	Tick     uint64      `json:"tick"`
	Step     float64     `json:"step"`
	Contacts int         `json:"contacts"`
	Bodies   []BodyFrame `json:"bodies"`
}

type BodyFrame struct {
	Index    int         `json:"index"`
	Shape    string      `json:"shape"`
	Radius   float64     `json:"radius,omitempty"`
	Extents  *[2]float64 `json:"extents,omitempty"`
	Mass     float64     `json:"mass"`
	Position [2]float64  `json:"position"`
	Velocity [2]float64  `json:"velocity"`
}

// FrameOf snapshots every body of sim in insertion order
func FrameOf(sim *engine.Simulation[vmath.Vec2, float64], step float64) Frame {
	f := Frame{
		Tick:     sim.TickCount(),
		Step:     step,
		Contacts: sim.LastStats().Contacts,
		Bodies:   make([]BodyFrame, 0, sim.Len()),
	}
	for i, b := range sim.Objects() {
		shape := b.Shape()
		bf := BodyFrame{
			Index:    i,
			Shape:    shape.Kind.String(),
			Mass:     b.Mass(),
			Position: [2]float64(b.Position()),
			Velocity: [2]float64(b.Velocity()),
		}
		switch shape.Kind {
		case physics.ShapeSphere:
			bf.Radius = shape.Radius
		case physics.ShapeCube:
			ext := [2]float64(shape.Extents)
			bf.Extents = &ext
		}
		f.Bodies = append(f.Bodies, bf)
	}
	return f
}
