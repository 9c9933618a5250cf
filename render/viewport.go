package render

import (
	"math"

	"github.com/lixenwraith/impact/parameter"
	"github.com/lixenwraith/impact/vmath"
)

// Viewport maps world coordinates onto terminal cells
// The world origin sits at the centre of the area; world y grows downward like screen rows.
// A cell is about twice as tall as it is wide, so x is stretched by CellAspect.
type Viewport struct {
	Width, Height int
	// Scale is rows per world unit
	Scale float64
}

// ToScreen returns the cell containing world point p
func (v Viewport) ToScreen(p vmath.Vec2) (x, y int) {
	x = v.Width/2 + int(math.Round(p.X()*v.Scale*parameter.CellAspect))
	y = v.Height/2 + int(math.Round(p.Y()*v.Scale))
	return x, y
}

// Contains reports whether cell (x, y) lies inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}
