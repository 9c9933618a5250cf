package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/parameter"
	"github.com/lixenwraith/impact/physics"
	"github.com/lixenwraith/impact/vmath"
)

// fakeSurface records the last rune and style written to each cell
type fakeSurface struct {
	w, h  int
	cells map[[2]int]rune
	style map[[2]int]tcell.Style
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cells: map[[2]int]rune{}, style: map[[2]int]tcell.Style{}}
}

func (f *fakeSurface) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		panic("write outside surface")
	}
	f.cells[[2]int{x, y}] = r
	f.style[[2]int{x, y}] = st
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

func (f *fakeSurface) row(y int) string {
	var sb strings.Builder
	for x := 0; x < f.w; x++ {
		if r, ok := f.cells[[2]int{x, y}]; ok {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func sphere(t *testing.T, r float64, pos, vel vmath.Vec2) *physics.RigidBody[vmath.Vec2, float64] {
	t.Helper()
	b, err := physics.NewRigidBody(physics.Sphere[vmath.Vec2](r), 1, pos, vel, 1)
	require.NoError(t, err)
	return b
}

func TestViewportToScreen(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, Scale: 4}

	x, y := vp.ToScreen(vmath.V2(0, 0))
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	// x is stretched by the cell aspect, y grows downward
	x, y = vp.ToScreen(vmath.V2(1, 1))
	assert.Equal(t, 40+int(4*parameter.CellAspect), x)
	assert.Equal(t, 16, y)

	x, y = vp.ToScreen(vmath.V2(-0.5, -2))
	assert.Equal(t, 40-int(2*parameter.CellAspect), x)
	assert.Equal(t, 4, y)

	assert.True(t, vp.Contains(0, 0))
	assert.False(t, vp.Contains(80, 0))
	assert.False(t, vp.Contains(0, -1))
}

func TestDrawBodySphere(t *testing.T) {
	s := newFakeSurface(40, 20)
	vp := Viewport{Width: 40, Height: 20, Scale: 4}
	b := sphere(t, 1, vmath.V2(0, 0), vmath.V2(0, 0))

	DrawBody(s, vp, *b, tcell.ColorWhite, false, 1)

	assert.Equal(t, parameter.BodyCentreChar, s.cells[[2]int{20, 10}])
	// Radius 1 at scale 4: top and bottom of the outline are 4 rows from centre
	assert.Equal(t, parameter.BodyOutlineChar, s.cells[[2]int{20, 6}])
	assert.Equal(t, parameter.BodyOutlineChar, s.cells[[2]int{20, 14}])
	// Left and right are 4 * aspect columns away
	assert.Equal(t, parameter.BodyOutlineChar, s.cells[[2]int{20 + int(4*parameter.CellAspect), 10}])
	assert.Equal(t, parameter.BodyOutlineChar, s.cells[[2]int{20 - int(4*parameter.CellAspect), 10}])
	// Nothing inside
	_, inside := s.cells[[2]int{21, 9}]
	assert.False(t, inside)
}

func TestDrawBodyClipsOffscreen(t *testing.T) {
	s := newFakeSurface(10, 6)
	vp := Viewport{Width: 10, Height: 6, Scale: 4}
	b := sphere(t, 2, vmath.V2(3, 3), vmath.V2(50, 50))

	assert.NotPanics(t, func() { DrawBody(s, vp, *b, tcell.ColorWhite, true, 1) })
}

func TestDrawBodyVelocityLine(t *testing.T) {
	s := newFakeSurface(60, 20)
	vp := Viewport{Width: 60, Height: 20, Scale: 2}
	b := sphere(t, 0.5, vmath.V2(0, 0), vmath.V2(4, 0))

	DrawBody(s, vp, *b, tcell.ColorWhite, false, 0.5)
	assert.NotContains(t, s.row(10), string(parameter.VelocityChar))

	DrawBody(s, vp, *b, tcell.ColorWhite, true, 0.5)
	// Displacement 2 world units = 2 * scale * aspect = 8 columns
	endX, _ := vp.ToScreen(vmath.V2(2, 0))
	assert.Equal(t, parameter.VelocityChar, s.cells[[2]int{endX, 10}])
	assert.Equal(t, parameter.BodyCentreChar, s.cells[[2]int{30, 10}], "centre drawn over the line")
}

func TestDrawBodyCube(t *testing.T) {
	s := newFakeSurface(40, 20)
	vp := Viewport{Width: 40, Height: 20, Scale: 2}
	b, err := physics.NewRigidBody(physics.Cube[vmath.Vec2, float64](vmath.V2(2, 2)), 1, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	require.NoError(t, err)

	DrawBody(s, vp, *b, tcell.ColorWhite, false, 1)

	assert.Equal(t, parameter.CubeMarkerChar, s.cells[[2]int{20, 10}])
	x, y := vp.ToScreen(vmath.V2(-1, -1))
	assert.Equal(t, parameter.BodyOutlineChar, s.cells[[2]int{x, y}])
}

func TestDrawSceneColorsBySpeed(t *testing.T) {
	sim := engine.New[vmath.Vec2, float64]()
	sim.Spawn(sphere(t, 0.5, vmath.V2(-3, 0), vmath.V2(0, 0)))
	sim.Spawn(sphere(t, 0.5, vmath.V2(3, 0), vmath.V2(0, 5)))

	s := newFakeSurface(60, 20)
	vp := Viewport{Width: 60, Height: 20, Scale: 2}
	DrawScene(s, vp, sim, SceneOptions{})

	xs, ys := vp.ToScreen(vmath.V2(-3, 0))
	xf, yf := vp.ToScreen(vmath.V2(3, 0))
	slow, _, _ := s.style[[2]int{xs, ys}].Decompose()
	fast, _, _ := s.style[[2]int{xf, yf}].Decompose()
	assert.Equal(t, SpeedColor(0, 5), slow)
	assert.Equal(t, SpeedColor(5, 5), fast)
	assert.NotEqual(t, slow, fast)
}

func TestSpeedColorEndpoints(t *testing.T) {
	assert.Equal(t, toTcell(colorSlow), SpeedColor(0, 10))
	assert.Equal(t, toTcell(colorFast), SpeedColor(10, 10))
	assert.Equal(t, SpeedColor(10, 10), SpeedColor(50, 10), "clamped above max")
	assert.Equal(t, SpeedColor(0, 10), SpeedColor(3, 0), "no reference speed is slow")
}

func TestDrawHUD(t *testing.T) {
	s := newFakeSurface(120, 3)
	DrawHUD(s, 2, HUD{Tick: 7, Bodies: 2, Contacts: 1, Momentum: 9, Energy: 32.5, Step: 0.5})

	line := s.row(2)
	assert.True(t, strings.HasPrefix(line, parameter.HUDPausedText))
	assert.Contains(t, line, "tick 7")
	assert.Contains(t, line, "contacts 1")

	DrawHUD(s, 2, HUD{Auto: true})
	assert.True(t, strings.HasPrefix(s.row(2), parameter.HUDAutoText))

	DrawHUD(s, 2, HUD{Err: errors.New("physics: not implemented: intersect sphere-cube")})
	line = s.row(2)
	assert.True(t, strings.HasPrefix(line, parameter.HUDErrorText))
	assert.Contains(t, line, "sphere-cube")
}

func TestDrawHUDClips(t *testing.T) {
	s := newFakeSurface(12, 1)
	assert.NotPanics(t, func() { DrawHUD(s, 0, HUD{Tick: 123456789}) })
	assert.Len(t, []rune(s.row(0)), 12)
}
