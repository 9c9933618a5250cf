package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/parameter"
	"github.com/lixenwraith/impact/physics"
	"github.com/lixenwraith/impact/vmath"
)

type body = physics.RigidBody[vmath.Vec2, float64]

// SceneOptions controls DrawScene
type SceneOptions struct {
	ShowVelocity bool
	// Step scales the velocity line to the displacement of one tick
	Step float64
}

// DrawScene draws every body, colored by speed relative to the fastest body
func DrawScene(s Surface, vp Viewport, sim *engine.Simulation[vmath.Vec2, float64], opt SceneOptions) {
	maxSpeed := 0.0
	for _, b := range sim.Objects() {
		maxSpeed = max(maxSpeed, b.Velocity().Len())
	}
	for _, b := range sim.Objects() {
		color := SpeedColor(b.Velocity().Len(), maxSpeed)
		DrawBody(s, vp, b, color, opt.ShowVelocity, opt.Step)
	}
}

// DrawBody draws one body at its current position
// Spheres are an outline sampled around the circumference with a centre mark; cubes are a box
// outline with a centre marker. The optional velocity line runs from the centre to where the
// body would be after step at its current velocity.
func DrawBody(s Surface, vp Viewport, b body, color tcell.Color, showVelocity bool, step float64) {
	style := tcell.StyleDefault.Foreground(color)
	pos := b.Position()

	if showVelocity {
		drawLine(s, vp, pos, pos.Add(b.Velocity().Mul(step)), parameter.VelocityChar,
			tcell.StyleDefault.Foreground(ColorVelocity))
	}

	shape := b.Shape()
	switch shape.Kind {
	case physics.ShapeSphere:
		drawCircle(s, vp, pos, shape.Radius, style)
		put(s, vp, pos, parameter.BodyCentreChar, style)
	case physics.ShapeCube:
		drawBox(s, vp, pos, shape.Extents, tcell.StyleDefault.Foreground(ColorCube))
		put(s, vp, pos, parameter.CubeMarkerChar, style)
	}
}

func put(s Surface, vp Viewport, p vmath.Vec2, ch rune, style tcell.Style) {
	x, y := vp.ToScreen(p)
	if vp.Contains(x, y) {
		s.SetContent(x, y, ch, nil, style)
	}
}

func drawCircle(s Surface, vp Viewport, centre vmath.Vec2, radius float64, style tcell.Style) {
	circumference := 2 * math.Pi * radius * vp.Scale * parameter.CellAspect
	n := max(parameter.MinOutlineSamples, int(circumference*parameter.OutlineSamplesPerCell))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		put(s, vp, centre.Add(vmath.V2(math.Cos(a), math.Sin(a)).Mul(radius)), parameter.BodyOutlineChar, style)
	}
}

func drawBox(s Surface, vp Viewport, centre, extents vmath.Vec2, style tcell.Style) {
	half := extents.Mul(0.5)
	corners := [4]vmath.Vec2{
		centre.Add(vmath.V2(-half.X(), -half.Y())),
		centre.Add(vmath.V2(half.X(), -half.Y())),
		centre.Add(vmath.V2(half.X(), half.Y())),
		centre.Add(vmath.V2(-half.X(), half.Y())),
	}
	for i := range corners {
		drawLine(s, vp, corners[i], corners[(i+1)%len(corners)], parameter.BodyOutlineChar, style)
	}
}

// drawLine steps one cell at a time along the longer screen axis
func drawLine(s Surface, vp Viewport, from, to vmath.Vec2, ch rune, style tcell.Style) {
	x0, y0 := vp.ToScreen(from)
	x1, y1 := vp.ToScreen(to)
	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	if n == 0 {
		if vp.Contains(x0, y0) {
			s.SetContent(x0, y0, ch, nil, style)
		}
		return
	}
	for i := 0; i <= n; i++ {
		x := x0 + int(math.Round(float64(dx*i)/float64(n)))
		y := y0 + int(math.Round(float64(dy*i)/float64(n)))
		if vp.Contains(x, y) {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
