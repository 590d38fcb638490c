package game

// Lines lists every row, column and diagonal as (row, col) coordinates.
var Lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [Size][Size]Cell

// CheckWinner reports whether player owns all three cells of any line.
func (b *Board) CheckWinner(player Cell) bool {
	for _, line := range Lines {
		if b[line[0][0]][line[0][1]] == player &&
			b[line[1][0]][line[1][1]] == player &&
			b[line[2][0]][line[2][1]] == player {
			return true
		}
	}
	return false
}

func (b *Board) IsFull() bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// State is the whole game: board, turn, outcome and cursor.
// It is owned by the frame loop; nothing in this package is safe for concurrent use.
type State struct {
	Board         Board
	CurrentPlayer Cell
	Winner        Winner
	CursorRow     int
	CursorCol     int
}

// New returns a fresh game with the cursor in the top-left cell.
func New() *State {
	s := &State{}
	s.NewGame()
	return s
}

// NewGame clears the board and gives the first turn to X.
// The cursor keeps its position.
func (s *State) NewGame() {
	s.Board = Board{}
	s.CurrentPlayer = PlayerX
	s.Winner = None
}

// PlaceMark puts the current player's mark on (row, col) and reports whether it did.
// Placing on an occupied cell, outside the board or after the game has ended changes nothing.
// The turn passes to the other player after every successful placement, including the last one.
func (s *State) PlaceMark(row, col int) bool {
	if s.Winner != None {
		return false
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	if s.Board[row][col] != Empty {
		return false
	}

	s.Board[row][col] = s.CurrentPlayer

	switch {
	case s.Board.CheckWinner(s.CurrentPlayer):
		s.Winner = winnerFor(s.CurrentPlayer)
	case s.Board.IsFull():
		s.Winner = Draw
	}

	s.CurrentPlayer = opponent(s.CurrentPlayer)
	return true
}

func (s *State) PlaceAtCursor() bool {
	return s.PlaceMark(s.CursorRow, s.CursorCol)
}

// MoveCursor steps the cursor one cell, wrapping around the board edges.
func (s *State) MoveCursor(d Direction) {
	switch d {
	case Up:
		s.CursorRow = (s.CursorRow + Size - 1) % Size
	case Down:
		s.CursorRow = (s.CursorRow + 1) % Size
	case Left:
		s.CursorCol = (s.CursorCol + Size - 1) % Size
	case Right:
		s.CursorCol = (s.CursorCol + 1) % Size
	}
}

func (s *State) Phase() Phase {
	if s.Winner == None {
		return Playing
	}
	return Ended
}

func (s *State) Ended() bool { return s.Phase() == Ended }
