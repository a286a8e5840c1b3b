package rules

import (
	"errors"
	"fmt"

	"github.com/asa-holland/gess-strategy-game/internal/game/board"
)

// MaxUnanchoredDistance is how far a piece without a center stone may travel.
const MaxUnanchoredDistance = 3

// Reason identifies which rule rejected a move.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonSameSquare       Reason = "SAME_SQUARE"
	ReasonOutOfBand        Reason = "OUT_OF_BAND"
	ReasonNoOwnStone       Reason = "NO_OWN_STONE"
	ReasonForeignStone     Reason = "FOREIGN_STONE"
	ReasonNoDirectionStone Reason = "NO_DIRECTION_STONE"
	ReasonOutOfRange       Reason = "OUT_OF_RANGE"
	ReasonNotStraight      Reason = "NOT_STRAIGHT"
	ReasonBreaksOwnRing    Reason = "BREAKS_OWN_RING"
	ReasonObstructed       Reason = "OBSTRUCTED"
)

// ErrIllegalMove is wrapped by every *MoveError.
var ErrIllegalMove = errors.New("illegal move")

// MoveError describes a rejected move.
type MoveError struct {
	Reason      Reason
	Origin      board.Coordinate
	Destination board.Coordinate
	Details     map[string]string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("illegal move %s-%s: %s", e.Origin, e.Destination, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// LegalityResult represents the result of a legality check.
type LegalityResult struct {
	Legal   bool
	Reason  Reason
	Details map[string]string
}

// Err converts an illegal result into a *MoveError. It returns nil for legal results.
func (r LegalityResult) Err(origin, destination board.Coordinate) error {
	if r.Legal {
		return nil
	}
	return &MoveError{Reason: r.Reason, Origin: origin, Destination: destination, Details: r.Details}
}

func legal() LegalityResult {
	return LegalityResult{Legal: true}
}

func illegal(reason Reason, details map[string]string) LegalityResult {
	return LegalityResult{Legal: false, Reason: reason, Details: details}
}

// LegalityChecker runs the checks that need no board mutation: geometry, piece
// ownership, direction and range. Ring preservation and path obstruction are
// checked by MoveEngine while the piece is lifted.
type LegalityChecker struct{}

// NewLegalityChecker creates a new legality checker.
func NewLegalityChecker() *LegalityChecker {
	return &LegalityChecker{}
}

// Check evaluates the static rules in order and reports the first failure.
func (lc *LegalityChecker) Check(b *board.Board, mover board.Player, origin, destination board.Coordinate) LegalityResult {
	if origin == destination {
		return illegal(ReasonSameSquare, map[string]string{"square": origin.String()})
	}

	for _, c := range []board.Coordinate{origin, destination} {
		if !c.InBand() {
			return illegal(ReasonOutOfBand, map[string]string{"square": c.String()})
		}
	}

	piece := b.Neighborhood(origin)
	if piece.Count(mover.Stone()) == 0 {
		return illegal(ReasonNoOwnStone, map[string]string{"origin": origin.String()})
	}
	if foreign := piece.Count(mover.Opponent().Stone()); foreign > 0 {
		return illegal(ReasonForeignStone, map[string]string{
			"origin":  origin.String(),
			"foreign": fmt.Sprintf("%d", foreign),
		})
	}

	dCol := destination.Col - origin.Col
	dRow := destination.Row - origin.Row

	slot, _ := DirectionSlot(dCol, dRow)
	if piece[slot] != mover.Stone() {
		return illegal(ReasonNoDirectionStone, map[string]string{"slot": slot.String()})
	}

	if Distance(dCol, dRow) > MaxUnanchoredDistance && piece[board.SlotCenter] != mover.Stone() {
		return illegal(ReasonOutOfRange, map[string]string{
			"distance": fmt.Sprintf("%d", Distance(dCol, dRow)),
		})
	}

	if dCol != 0 && dRow != 0 && abs(dCol) != abs(dRow) {
		return illegal(ReasonNotStraight, map[string]string{
			"d_col": fmt.Sprintf("%d", dCol),
			"d_row": fmt.Sprintf("%d", dRow),
		})
	}

	return legal()
}

// DirectionSlot maps a displacement to the perimeter slot that must hold one of
// the mover's stones. Positive dRow points toward row 20. It returns false for
// a zero displacement.
func DirectionSlot(dCol, dRow int) (board.Slot, bool) {
	switch {
	case dRow > 0 && dCol > 0:
		return board.SlotNE, true
	case dRow > 0 && dCol < 0:
		return board.SlotNW, true
	case dRow > 0:
		return board.SlotN, true
	case dRow < 0 && dCol > 0:
		return board.SlotSE, true
	case dRow < 0 && dCol < 0:
		return board.SlotSW, true
	case dRow < 0:
		return board.SlotS, true
	case dCol > 0:
		return board.SlotE, true
	case dCol < 0:
		return board.SlotW, true
	default:
		return board.SlotCenter, false
	}
}

// Distance is the number of steps a piece travels for the displacement.
func Distance(dCol, dRow int) int {
	return max(abs(dCol), abs(dRow))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
