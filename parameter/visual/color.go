package visual

// Hex colors for the speed ramp and HUD, parsed with go-colorful
const (
	HexSpeedSlow = "#3c64dc"
	HexSpeedFast = "#ff3c3c"

	HexVelocity  = "#78aa78"
	HexCube      = "#b4b4b4"
	HexHUD       = "#e6e6e6"
	HexHUDPaused = "#ffb400"
	HexHUDError  = "#ff5050"
)
