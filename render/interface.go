package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawing target, satisfied by tcell.Screen
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}
