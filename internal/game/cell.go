package game

// Size is the number of rows and columns on the board.
const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

func (c Cell) String() string {
	switch c {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// Winner records how a game ended. None means the game is still being played.
type Winner uint8

const (
	None Winner = iota
	PlayerXWins
	PlayerOWins
	Draw
)

func (w Winner) String() string {
	switch w {
	case PlayerXWins:
		return "X wins"
	case PlayerOWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// Mark returns the cell value of the winning player, or Empty for None and Draw.
func (w Winner) Mark() Cell {
	switch w {
	case PlayerXWins:
		return PlayerX
	case PlayerOWins:
		return PlayerO
	default:
		return Empty
	}
}

type Direction uint8

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

type Phase uint8

const (
	Playing Phase = iota
	Ended
)

func (p Phase) String() string {
	if p == Ended {
		return "ended"
	}
	return "playing"
}

func winnerFor(player Cell) Winner {
	if player == PlayerX {
		return PlayerXWins
	}
	return PlayerOWins
}

func opponent(player Cell) Cell {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}
