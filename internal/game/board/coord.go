package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 20

const columnLetters = "abcdefghijklmnopqrst"

// ErrInvalidCoordinate reports malformed or off-board coordinate text.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate addresses a square. Col is 0-based (0 = "a"), Row is 1-based as printed.
type Coordinate struct {
	Col int
	Row int
}

// ParseCoordinate converts text such as "c8" or "o18" into a Coordinate.
// The text must be exactly a lower-case column letter followed by the row;
// surrounding spaces, upper case and leading zeros ("c05") are rejected.
func ParseCoordinate(text string) (Coordinate, error) {
	if len(text) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}

	col := strings.IndexByte(columnLetters, text[0])
	if col < 0 {
		return Coordinate{}, fmt.Errorf("%w: column %q not in a-t", ErrInvalidCoordinate, text[:1])
	}

	digits := text[1:]
	if digits[0] == '0' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > Size {
		return Coordinate{}, fmt.Errorf("%w: row %q not in 1-%d", ErrInvalidCoordinate, digits, Size)
	}

	return Coordinate{Col: col, Row: row}, nil
}

// MustParse is ParseCoordinate for literals known to be valid; it panics otherwise.
func MustParse(text string) Coordinate {
	c, err := ParseCoordinate(text)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the letter-number form of the coordinate.
func (c Coordinate) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", columnLetters[c.Col], c.Row)
}

// OnBoard reports whether the coordinate addresses one of the 400 squares.
func (c Coordinate) OnBoard() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 1 && c.Row <= Size
}

// InBand reports whether c may be chosen as a piece center: columns b..s, rows 2..19.
func (c Coordinate) InBand() bool {
	return c.Col >= 1 && c.Col <= Size-2 && c.Row >= 2 && c.Row <= Size-1
}

// OnRim reports whether c lies in row 1, row 20, column a or column t.
func (c Coordinate) OnRim() bool {
	return c.OnBoard() && !c.InBand()
}

// Offset returns the coordinate dCol columns and dRow rows away.
func (c Coordinate) Offset(dCol, dRow int) Coordinate {
	return Coordinate{Col: c.Col + dCol, Row: c.Row + dRow}
}
