package board

// Slot indexes a square within a piece, in reading order from the north-west corner.
type Slot int

const (
	SlotNW Slot = iota
	SlotN
	SlotNE
	SlotW
	SlotCenter
	SlotE
	SlotSW
	SlotS
	SlotSE
)

var slotNames = [...]string{"NW", "N", "NE", "W", "C", "E", "SW", "S", "SE"}

func (s Slot) String() string {
	if s < SlotNW || s > SlotSE {
		return "?"
	}
	return slotNames[s]
}

// offset returns the column and row displacement of the slot from the piece center.
// North is toward row 20.
func (s Slot) offset() (dCol, dRow int) {
	return int(s)%3 - 1, 1 - int(s)/3
}

// Piece is the 3x3 footprint around a center square, ordered NW, N, NE, W, C, E, SW, S, SE.
type Piece [9]Cell

// Count returns how many squares of the piece hold cell.
func (p Piece) Count(cell Cell) int {
	n := 0
	for _, c := range p {
		if c == cell {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no square of the piece holds a stone.
func (p Piece) IsEmpty() bool {
	return p.Count(Empty) == len(p)
}

// Stones returns the number of non-empty squares.
func (p Piece) Stones() int {
	return len(p) - p.Count(Empty)
}

// IsRing reports whether the piece is an empty center surrounded by eight of player's stones.
func (p Piece) IsRing(player Player) bool {
	if p[SlotCenter] != Empty {
		return false
	}
	stone := player.Stone()
	for s, c := range p {
		if Slot(s) != SlotCenter && c != stone {
			return false
		}
	}
	return true
}
