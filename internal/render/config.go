package render

import "image/color"

// Fixed screen geometry. The board is square and occupies the left part of the
// screen; the strip to its right holds the end-of-game banner.
const (
	ScreenWidth  = 640
	ScreenHeight = 480

	CellSize      = ScreenHeight / 3
	LineThickness = 5
	CursorWidth   = 5
	MarkInset     = 10
	CircleRadius  = (CellSize - 2*MarkInset) / 2
)

// Palette.
var (
	Background  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GridColor   = color.RGBA{A: 0xFF}
	CursorColor = color.RGBA{G: 0xFF, A: 0xFF}
	XColor      = color.RGBA{R: 0xFF, A: 0xFF}
	OColor      = color.RGBA{B: 0xFF, A: 0xFF}
	TextColor   = color.RGBA{A: 0xFF}

	// Overlay is used only for the debug panel.
	OverlayColor = color.RGBA{R: 0x90, G: 0x00, B: 0xFF, A: 0xFF}
)
