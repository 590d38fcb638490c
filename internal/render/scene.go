package render

import (
	"image"

	"github.com/rook-computer/tictactoe/internal/game"
	"github.com/rook-computer/tictactoe/internal/render/layout"
)

// Banner geometry in the strip right of the board.
const (
	bannerY       = 0
	bannerAdvance = 30
	tieX          = 490
	markX         = 480
	markCircleX   = 495
	wonX          = 540
	wonCircleX    = 585
	wonNX         = 610
	bannerRadius  = GlyphHeight / 2
)

// RenderFrame redraws the whole surface from st: background, grid, cursor,
// marks and, once the game has ended, the banner.
func RenderFrame(s *Surface, st *game.State) {
	s.Clear(Background)
	drawGrid(s)
	drawCursor(s, st.CursorRow, st.CursorCol)

	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			switch st.Board[row][col] {
			case game.PlayerX:
				DrawX(s, row, col, CellSize, XColor)
			case game.PlayerO:
				centre := layout.Centre(layout.Cell(row, col, CellSize))
				DrawCircle(s, centre.X, centre.Y, CircleRadius, OColor)
			}
		}
	}

	if st.Winner != game.None {
		drawBanner(s, st.Winner)
	}
}

func drawGrid(s *Surface) {
	board := game.Size * CellSize
	for i := 1; i < game.Size; i++ {
		s.FillRect(image.Rect(i*CellSize, 0, i*CellSize+LineThickness, ScreenHeight), GridColor)
		s.FillRect(image.Rect(0, i*CellSize, board, i*CellSize+LineThickness), GridColor)
	}
}

func drawCursor(s *Surface, row, col int) {
	for _, band := range layout.Border(layout.Cell(row, col, CellSize), CursorWidth) {
		s.FillRect(band, CursorColor)
	}
}

// drawBanner writes "TIE" for a draw, or the winner's mark followed by "WON"
// where the O of WON is drawn as a circle.
func drawBanner(s *Surface, w game.Winner) {
	if w == game.Draw {
		DrawString(s, "TIE", tieX, bannerY, bannerAdvance, TextColor)
		return
	}

	if w.Mark() == game.PlayerX {
		DrawXAt(s, markX, bannerY, GlyphHeight, XColor)
	} else {
		DrawCircle(s, markCircleX, bannerY+bannerRadius, bannerRadius, OColor)
	}
	DrawGlyph(s, 'W', wonX, bannerY, TextColor)
	DrawCircle(s, wonCircleX, bannerY+bannerRadius, bannerRadius, OColor)
	DrawGlyph(s, 'N', wonNX, bannerY, TextColor)
}
