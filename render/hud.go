package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/impact/parameter"
)

// HUD is the status line content
type HUD struct {
	Tick     uint64
	Bodies   int
	Contacts int
	Momentum float64
	Energy   float64
	Step     float64
	Auto     bool
	Err      error
}

// Text returns the status line without the mode badge
func (h HUD) Text() string {
	if h.Err != nil {
		return fmt.Sprintf(" %v", h.Err)
	}
	return fmt.Sprintf(" tick %d  bodies %d  contacts %d  step %.3g  Σm|v| %.4f  KE %.4f",
		h.Tick, h.Bodies, h.Contacts, h.Step, h.Momentum, h.Energy)
}

// DrawHUD writes the status line on row y, clipped to the surface width
func DrawHUD(s Surface, y int, h HUD) {
	width, _ := s.Size()

	badge, badgeColor := parameter.HUDPausedText, ColorHUDPaused
	switch {
	case h.Err != nil:
		badge, badgeColor = parameter.HUDErrorText, ColorHUDError
	case h.Auto:
		badge, badgeColor = parameter.HUDAutoText, ColorHUD
	}

	x := drawText(s, 0, y, width, badge, tcell.StyleDefault.Reverse(true).Foreground(badgeColor))
	textColor := ColorHUD
	if h.Err != nil {
		textColor = ColorHUDError
	}
	x = drawText(s, x, y, width, h.Text(), tcell.StyleDefault.Foreground(textColor))
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// drawText writes str from x and returns the column after the last cell written
func drawText(s Surface, x, y, width int, str string, style tcell.Style) int {
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}
