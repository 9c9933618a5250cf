package parameter

import "time"

// Layout & Margins
const (
	// BottomMargin for the HUD status line
	BottomMargin = 1

	// DefaultScale is terminal rows per world unit
	DefaultScale = 4.0

	// CellAspect is how many columns one row spans visually
	CellAspect = 2.0

	// OutlineSamplesPerCell sets circle outline density
	OutlineSamplesPerCell = 4
	MinOutlineSamples     = 8
)

// Glyphs
const (
	BodyOutlineChar = '●'
	BodyCentreChar  = '+'
	CubeMarkerChar  = '■'
	VelocityChar    = '·'
)

// Frame pacing
const (
	// FrameInterval drives screen refresh and the auto-stepper poll
	FrameInterval = 16 * time.Millisecond
)

// HUD
const (
	HUDPausedText = " PAUSED "
	HUDAutoText   = "  AUTO  "
	HUDErrorText  = " ERROR  "
)
