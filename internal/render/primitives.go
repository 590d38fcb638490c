package render

import (
	"image/color"

	"github.com/rook-computer/tictactoe/internal/render/layout"
)

// DrawCircle plots a one pixel wide circle outline with the integer midpoint
// algorithm, eight octant points per step.
func DrawCircle(s *Surface, centreX, centreY, radius int, c color.RGBA) {
	diameter := radius * 2

	x := radius - 1
	y := 0
	tx := 1
	ty := 1
	err := tx - diameter

	for x >= y {
		s.SetPixel(centreX+x, centreY-y, c)
		s.SetPixel(centreX+x, centreY+y, c)
		s.SetPixel(centreX-x, centreY-y, c)
		s.SetPixel(centreX-x, centreY+y, c)
		s.SetPixel(centreX+y, centreY-x, c)
		s.SetPixel(centreX+y, centreY+x, c)
		s.SetPixel(centreX-y, centreY-x, c)
		s.SetPixel(centreX-y, centreY+x, c)

		if err <= 0 {
			y++
			err += ty
			ty += 2
		}
		if err > 0 {
			x--
			tx += 2
			err += tx - diameter
		}
	}
}

// DrawX draws the two diagonals of board cell (row, col), MarkInset pixels in from each edge.
func DrawX(s *Surface, row, col, cellSize int, c color.RGBA) {
	inner := layout.Inset(layout.Cell(row, col, cellSize), MarkInset)
	drawDiagonals(s, inner.Min.X, inner.Min.Y, inner.Dx(), c)
}

// DrawXAt draws the diagonals of a size×size square whose top-left corner is (x, y).
func DrawXAt(s *Surface, x, y, size int, c color.RGBA) {
	drawDiagonals(s, x, y, size, c)
}

func drawDiagonals(s *Surface, x, y, size int, c color.RGBA) {
	bottom := y + size
	for i := 0; i < size; i++ {
		s.SetPixel(x+i, y+i, c)
		s.SetPixel(x+i, bottom-i-1, c)
	}
}
