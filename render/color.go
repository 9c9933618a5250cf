package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/impact/parameter/visual"
)

// Palette colors parsed once from the visual hex table
var (
	colorSlow = mustHex(visual.HexSpeedSlow)
	colorFast = mustHex(visual.HexSpeedFast)

	ColorVelocity  = toTcell(mustHex(visual.HexVelocity))
	ColorCube      = toTcell(mustHex(visual.HexCube))
	ColorHUD       = toTcell(mustHex(visual.HexHUD))
	ColorHUDPaused = toTcell(mustHex(visual.HexHUDPaused))
	ColorHUDError  = toTcell(mustHex(visual.HexHUDError))
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// SpeedColor ramps from the slow to the fast color as speed approaches maxSpeed
// Blended in HCL so the midpoint keeps perceived brightness
func SpeedColor(speed, maxSpeed float64) tcell.Color {
	t := 0.0
	if maxSpeed > 0 {
		t = min(max(speed/maxSpeed, 0), 1)
	}
	return toTcell(colorSlow.BlendHcl(colorFast, t))
}
