package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardOpening(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 43, b.Count(Black))
	assert.Equal(t, 43, b.Count(White))
	assert.True(t, b.HasRing(PlayerBlack))
	assert.True(t, b.HasRing(PlayerWhite))

	cell, err := b.CellAt(MustParse("l3"))
	require.NoError(t, err)
	assert.Equal(t, Empty, cell, "l3 is the center of black's opening ring")
	assert.True(t, b.Neighborhood(MustParse("l3")).IsRing(PlayerBlack))
	assert.True(t, b.Neighborhood(MustParse("l18")).IsRing(PlayerWhite))
}

func TestOpeningIsMirrorSymmetric(t *testing.T) {
	b := NewBoard()
	for row := 1; row <= Size; row++ {
		for col := 0; col < Size; col++ {
			top, err := b.CellAt(Coordinate{Col: col, Row: row})
			require.NoError(t, err)
			bottom, err := b.CellAt(Coordinate{Col: col, Row: Size + 1 - row})
			require.NoError(t, err)
			switch top {
			case Black:
				assert.Equal(t, White, bottom)
			case White:
				assert.Equal(t, Black, bottom)
			default:
				assert.Equal(t, Empty, bottom)
			}
		}
	}
}

func TestCellAtRejectsOffBoard(t *testing.T) {
	b := NewBoard()
	for _, c := range []Coordinate{{Col: -1, Row: 5}, {Col: 20, Row: 5}, {Col: 3, Row: 0}, {Col: 3, Row: 21}} {
		_, err := b.CellAt(c)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
		assert.ErrorIs(t, b.Set(c, Black), ErrInvalidCoordinate)
	}
}

func TestNeighborhoodOrder(t *testing.T) {
	b := NewBoard()

	got := b.Neighborhood(MustParse("o18"))
	assert.Equal(t, Piece{White, Empty, White, Empty, White, Empty, White, Empty, White}, got)

	var empty Board
	center := MustParse("k10")
	for s := SlotNW; s <= SlotSE; s++ {
		dCol, dRow := s.offset()
		require.NoError(t, empty.Set(center.Offset(dCol, dRow), Black))
		p := empty.Neighborhood(center)
		assert.Equal(t, Black, p[s], "slot %s", s)
		assert.Equal(t, 1, p.Stones(), "slot %s", s)
		empty.Lift(center)
	}

	// North is toward row 20.
	require.NoError(t, empty.Set(MustParse("k11"), White))
	assert.Equal(t, White, empty.Neighborhood(center)[SlotN])
}

func TestLiftAndPlace(t *testing.T) {
	b := NewBoard()
	before := *b
	center := MustParse("c3")

	lifted := b.Lift(center)
	assert.Equal(t, Piece{Empty, Black, Empty, Black, Black, Black, Empty, Black, Empty}, lifted)
	assert.True(t, b.Neighborhood(center).IsEmpty())
	assert.Equal(t, 43-5, b.Count(Black))

	b.Place(center, lifted)
	assert.Equal(t, before, *b)
}

func TestHasRing(t *testing.T) {
	var b Board
	assert.False(t, b.HasRing(PlayerBlack))

	ring := Piece{Black, Black, Black, Black, Empty, Black, Black, Black, Black}
	b.Place(MustParse("b2"), ring)
	assert.True(t, b.HasRing(PlayerBlack))
	assert.False(t, b.HasRing(PlayerWhite))

	// A filled center is not a ring.
	require.NoError(t, b.Set(MustParse("b2"), Black))
	assert.False(t, b.HasRing(PlayerBlack))

	// A single foreign stone on the perimeter spoils it.
	require.NoError(t, b.Set(MustParse("b2"), Empty))
	require.NoError(t, b.Set(MustParse("c3"), White))
	assert.False(t, b.HasRing(PlayerBlack))
}

func TestClearRim(t *testing.T) {
	var b Board
	for _, sq := range []string{"a1", "a10", "t7", "k1", "k20", "t20", "b2", "s19", "k10"} {
		require.NoError(t, b.Set(MustParse(sq), Black))
	}

	removed := b.ClearRim()
	assert.Equal(t, 6, removed)
	assert.Equal(t, 3, b.Count(Black))
	for row := 1; row <= Size; row++ {
		for col := 0; col < Size; col++ {
			c := Coordinate{Col: col, Row: row}
			if c.OnRim() {
				cell, err := b.CellAt(c)
				require.NoError(t, err)
				assert.Equal(t, Empty, cell, c.String())
			}
		}
	}

	assert.Equal(t, 0, b.ClearRim())
}

func TestFingerprint(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.Set(MustParse("k10"), White))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.Set(MustParse("k10"), Empty))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestRender(t *testing.T) {
	b := NewBoard()
	out := b.Render(ASCIIGlyphs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, Size+1)

	assert.Equal(t, "20 . . . . . . . . . . . . . . . . . . . .", lines[0])
	assert.Equal(t, "19 . . W . W . W W W W W W W W . W . W . .", lines[1])
	assert.Equal(t, " 3 . B B B . B . B B B B . B . B . B B B .", lines[17])
	assert.Equal(t, "   a b c d e f g h i j k l m n o p q r s t", lines[Size])

	assert.Contains(t, b.String(), "●")
}

func TestPieceHelpers(t *testing.T) {
	p := Piece{Black, Empty, White, Empty, Empty, Empty, Empty, Empty, Black}
	assert.Equal(t, 2, p.Count(Black))
	assert.Equal(t, 3, p.Stones())
	assert.False(t, p.IsEmpty())
	assert.True(t, Piece{}.IsEmpty())
	assert.Equal(t, "NE", SlotNE.String())
	assert.Equal(t, "C", SlotCenter.String())
}

func TestPlayerHelpers(t *testing.T) {
	assert.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	assert.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	assert.Equal(t, Black, PlayerBlack.Stone())
	assert.Equal(t, White, PlayerWhite.Stone())
	assert.Equal(t, "BLACK", PlayerBlack.String())
	assert.Equal(t, "WHITE", White.String())
}
