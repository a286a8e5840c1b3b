package board

import "fmt"

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

var cellNames = map[Cell]string{
	Empty: "EMPTY",
	Black: "BLACK",
	White: "WHITE",
}

func (c Cell) String() string {
	if name, ok := cellNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CELL_%d", int(c))
}

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerBlack Player = iota
	PlayerWhite
)

func (p Player) String() string {
	switch p {
	case PlayerBlack:
		return "BLACK"
	case PlayerWhite:
		return "WHITE"
	default:
		return fmt.Sprintf("PLAYER_%d", int(p))
	}
}

// Opponent returns the player waiting while p is to move.
func (p Player) Opponent() Player {
	if p == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Stone returns the cell value that holds one of p's stones.
func (p Player) Stone() Cell {
	if p == PlayerBlack {
		return Black
	}
	return White
}
