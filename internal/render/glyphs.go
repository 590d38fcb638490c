package render

import (
	"image"
	"image/color"
)

// Block glyph metrics. Bars are GlyphBar pixels thick; slants are one pixel wide.
const (
	GlyphHeight = 30
	GlyphWidth  = 20
	GlyphBar    = 5
)

type strokeKind uint8

const (
	strokeBar strokeKind = iota
	strokeDown
	strokeUp
)

// stroke is either a filled bar at (x, y) of size w×h, or a slant that starts at
// column x and drifts w pixels right over the full glyph height. strokeDown runs
// from the top to the bottom row, strokeUp from the bottom to the top row.
type stroke struct {
	kind       strokeKind
	x, y, w, h int
}

func bar(x, y, w, h int) stroke { return stroke{kind: strokeBar, x: x, y: y, w: w, h: h} }
func down(x, w int) stroke      { return stroke{kind: strokeDown, x: x, w: w} }
func up(x, w int) stroke        { return stroke{kind: strokeUp, x: x, w: w} }

var glyphT = []stroke{
	bar(0, 0, GlyphWidth, GlyphBar),
	bar(GlyphWidth/2, 0, GlyphBar, GlyphHeight),
}

var glyphs = map[rune][]stroke{
	'W': {down(0, 5), up(5, 5), down(10, 5), up(15, 5)},
	'I': append(append([]stroke{}, glyphT...), bar(0, GlyphHeight, GlyphWidth, GlyphBar)),
	'N': {
		bar(0, 0, 1, GlyphHeight),
		down(0, GlyphWidth),
		bar(GlyphWidth, 0, 1, GlyphHeight),
	},
	'T': glyphT,
	'E': {
		bar(0, 0, GlyphBar, GlyphHeight),
		bar(0, 0, GlyphWidth, GlyphBar),
		bar(0, GlyphHeight/2, GlyphWidth, GlyphBar),
		bar(0, GlyphHeight, GlyphWidth, GlyphBar),
	},
}

// HasGlyph reports whether r can be drawn by DrawGlyph.
func HasGlyph(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

// DrawGlyph draws the block letter r with its top-left corner at (x, y).
// Only W, I, N, T and E exist; any other rune draws nothing and returns false.
func DrawGlyph(s *Surface, r rune, x, y int, c color.RGBA) bool {
	strokes, ok := glyphs[r]
	if !ok {
		return false
	}
	for _, st := range strokes {
		switch st.kind {
		case strokeBar:
			s.FillRect(image.Rect(x+st.x, y+st.y, x+st.x+st.w, y+st.y+st.h), c)
		case strokeDown:
			for i := 0; i <= GlyphHeight; i++ {
				s.SetPixel(x+st.x+i*st.w/GlyphHeight, y+i, c)
			}
		case strokeUp:
			for i := 0; i <= GlyphHeight; i++ {
				s.SetPixel(x+st.x+i*st.w/GlyphHeight, y+GlyphHeight-i, c)
			}
		}
	}
	return true
}

// DrawString draws text left to right, advancing advance pixels per rune.
// Runes without a glyph leave a gap.
func DrawString(s *Surface, text string, x, y, advance int, c color.RGBA) {
	for _, r := range text {
		DrawGlyph(s, r, x, y, c)
		x += advance
	}
}
