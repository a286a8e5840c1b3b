package board

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Board is the 20x20 grid. The zero value is an empty board; copying a Board copies every square.
type Board struct {
	cells [Size][Size]Cell // [row-1][col]
}

var (
	whiteOpening = []string{
		"c19", "e19", "g19", "h19", "i19", "j19", "k19", "l19", "m19", "n19", "p19", "r19",
		"b18", "c18", "d18", "f18", "h18", "i18", "j18", "k18", "m18", "o18", "q18", "r18", "s18",
		"c17", "e17", "g17", "h17", "i17", "j17", "k17", "l17", "m17", "n17", "p17", "r17",
		"c14", "f14", "i14", "l14", "o14", "r14",
	}
	blackOpening = []string{
		"c7", "f7", "i7", "l7", "o7", "r7",
		"c4", "e4", "g4", "h4", "i4", "j4", "k4", "l4", "m4", "n4", "p4", "r4",
		"b3", "c3", "d3", "f3", "h3", "i3", "j3", "k3", "m3", "o3", "q3", "r3", "s3",
		"c2", "e2", "g2", "h2", "i2", "j2", "k2", "l2", "m2", "n2", "p2", "r2",
	}
)

// NewBoard returns a board holding the standard opening arrangement.
func NewBoard() *Board {
	b := &Board{}
	for _, sq := range whiteOpening {
		b.put(MustParse(sq), White)
	}
	for _, sq := range blackOpening {
		b.put(MustParse(sq), Black)
	}
	return b
}

func (b *Board) at(c Coordinate) Cell {
	return b.cells[c.Row-1][c.Col]
}

func (b *Board) put(c Coordinate, cell Cell) {
	b.cells[c.Row-1][c.Col] = cell
}

// CellAt returns the content of a square.
func (b *Board) CellAt(c Coordinate) (Cell, error) {
	if !c.OnBoard() {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	return b.at(c), nil
}

// Set overwrites a single square. It is meant for setting up positions.
func (b *Board) Set(c Coordinate, cell Cell) error {
	if !c.OnBoard() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	b.put(c, cell)
	return nil
}

// Neighborhood returns the piece centered on center. The whole footprint must be on the board.
func (b *Board) Neighborhood(center Coordinate) Piece {
	var p Piece
	for s := range p {
		dCol, dRow := Slot(s).offset()
		p[s] = b.at(center.Offset(dCol, dRow))
	}
	return p
}

// HasRing reports whether player has a ring centered anywhere inside the b..s, 2..19 band.
func (b *Board) HasRing(player Player) bool {
	for row := 2; row <= Size-1; row++ {
		for col := 1; col <= Size-2; col++ {
			center := Coordinate{Col: col, Row: row}
			if b.at(center) != Empty {
				continue
			}
			if b.Neighborhood(center).IsRing(player) {
				return true
			}
		}
	}
	return false
}

// Lift removes the piece centered on center from the board and returns it.
func (b *Board) Lift(center Coordinate) Piece {
	p := b.Neighborhood(center)
	b.Place(center, Piece{})
	return p
}

// Place writes piece into the footprint centered on center, replacing whatever was there.
func (b *Board) Place(center Coordinate, piece Piece) {
	for s, cell := range piece {
		dCol, dRow := Slot(s).offset()
		b.put(center.Offset(dCol, dRow), cell)
	}
}

// ClearRim empties rows 1 and 20 and columns a and t, returning how many stones were removed.
func (b *Board) ClearRim() int {
	removed := 0
	for row := 1; row <= Size; row++ {
		for col := 0; col < Size; col++ {
			c := Coordinate{Col: col, Row: row}
			if !c.OnRim() {
				continue
			}
			if b.at(c) != Empty {
				removed++
				b.put(c, Empty)
			}
		}
	}
	return removed
}

// Count returns the number of squares holding cell.
func (b *Board) Count(cell Cell) int {
	n := 0
	for row := range b.cells {
		for _, c := range b.cells[row] {
			if c == cell {
				n++
			}
		}
	}
	return n
}

// Fingerprint hashes the full grid. Equal boards always share a fingerprint.
func (b *Board) Fingerprint() uint64 {
	var buf [Size * Size]byte
	for row := range b.cells {
		for col, c := range b.cells[row] {
			buf[row*Size+col] = byte(c)
		}
	}
	return xxhash.Sum64(buf[:])
}

// Glyphs selects the characters used by Render.
type Glyphs struct {
	Empty string
	Black string
	White string
}

var (
	// UnicodeGlyphs draws stones as filled and hollow circles.
	UnicodeGlyphs = Glyphs{Empty: "·", Black: "●", White: "○"}
	// ASCIIGlyphs is for terminals without unicode support.
	ASCIIGlyphs = Glyphs{Empty: ".", Black: "B", White: "W"}
)

func (g Glyphs) of(c Cell) string {
	switch c {
	case Black:
		return g.Black
	case White:
		return g.White
	default:
		return g.Empty
	}
}

// Render draws the board with row 20 at the top and the column letters underneath.
func (b *Board) Render(g Glyphs) string {
	var sb strings.Builder
	for row := Size; row >= 1; row-- {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.of(b.cells[row-1][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for col := 0; col < Size; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(columnLetters[col])
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(UnicodeGlyphs)
}
