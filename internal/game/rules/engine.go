package rules

import (
	"github.com/asa-holland/gess-strategy-game/internal/game/board"
	"go.uber.org/zap"
)

// Outcome describes a committed move.
type Outcome struct {
	Mover       board.Player
	Origin      board.Coordinate
	Destination board.Coordinate
	// Moved is the origin piece as it was placed at the destination, before rim clearing.
	Moved board.Piece
	// Captured is whatever the destination footprint held before the move.
	Captured board.Piece
	// RimCleared counts the stones removed from the rim after placement.
	RimCleared int
	// OpponentLostRing is set when the move leaves the opponent without a ring; the mover has won.
	OpponentLostRing bool
}

// CapturedStones returns the number of stones removed from the destination footprint.
func (o Outcome) CapturedStones() int {
	return o.Captured.Stones()
}

// MoveEngine validates and executes moves against a board.
type MoveEngine struct {
	gameID  string
	logger  *zap.Logger
	checker *LegalityChecker
	bus     *EventBus
}

// NewMoveEngine creates an engine. logger and bus may be nil.
func NewMoveEngine(gameID string, logger *zap.Logger, bus *EventBus) *MoveEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoveEngine{
		gameID:  gameID,
		logger:  logger,
		checker: NewLegalityChecker(),
		bus:     bus,
	}
}

// liftTxn records lifted footprints so a rejected move can put them back.
type liftTxn struct {
	b      *board.Board
	lifted []liftRecord
}

type liftRecord struct {
	center board.Coordinate
	piece  board.Piece
}

func (tx *liftTxn) lift(center board.Coordinate) board.Piece {
	p := tx.b.Lift(center)
	tx.lifted = append(tx.lifted, liftRecord{center: center, piece: p})
	return p
}

// rollback restores lifts newest first.
func (tx *liftTxn) rollback() {
	for i := len(tx.lifted) - 1; i >= 0; i-- {
		tx.b.Place(tx.lifted[i].center, tx.lifted[i].piece)
	}
	tx.lifted = nil
}

// AttemptMove applies mover's move from origin to destination if it is legal.
// On error the board is unchanged and the error wraps ErrIllegalMove.
func (e *MoveEngine) AttemptMove(b *board.Board, mover board.Player, origin, destination board.Coordinate) (Outcome, error) {
	if result := e.checker.Check(b, mover, origin, destination); !result.Legal {
		return Outcome{}, e.reject(mover, origin, destination, result)
	}

	tx := &liftTxn{b: b}
	piece := tx.lift(origin)
	if !b.HasRing(mover) {
		tx.rollback()
		return Outcome{}, e.reject(mover, origin, destination, illegal(ReasonBreaksOwnRing, map[string]string{"stage": "lift"}))
	}

	stepCol := sign(destination.Col - origin.Col)
	stepRow := sign(destination.Row - origin.Row)
	for at := origin; at != destination; at = at.Offset(stepCol, stepRow) {
		if !b.Neighborhood(at).IsEmpty() {
			tx.rollback()
			return Outcome{}, e.reject(mover, origin, destination, illegal(ReasonObstructed, map[string]string{"at": at.String()}))
		}
	}

	captured := tx.lift(destination)
	if !b.HasRing(mover) {
		tx.rollback()
		return Outcome{}, e.reject(mover, origin, destination, illegal(ReasonBreaksOwnRing, map[string]string{"stage": "capture"}))
	}

	b.Place(destination, piece)
	outcome := Outcome{
		Mover:       mover,
		Origin:      origin,
		Destination: destination,
		Moved:       piece,
		Captured:    captured,
		RimCleared:  b.ClearRim(),
	}
	outcome.OpponentLostRing = !b.HasRing(mover.Opponent())

	e.logger.Info("move applied",
		zap.String("game_id", e.gameID),
		zap.String("player", mover.String()),
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
		zap.Int("captured", outcome.CapturedStones()),
		zap.Int("rim_cleared", outcome.RimCleared),
	)
	e.publishApplied(outcome)

	return outcome, nil
}

func (e *MoveEngine) reject(mover board.Player, origin, destination board.Coordinate, result LegalityResult) error {
	e.logger.Debug("move rejected",
		zap.String("game_id", e.gameID),
		zap.String("player", mover.String()),
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
		zap.String("reason", string(result.Reason)),
	)
	if e.bus != nil {
		evt := NewEvent(EventMoveRejected, e.gameID, mover.String())
		evt.Origin = origin.String()
		evt.Destination = destination.String()
		evt.Reason = result.Reason
		for k, v := range result.Details {
			evt.Metadata[k] = v
		}
		e.bus.Publish(evt)
	}
	return result.Err(origin, destination)
}

func (e *MoveEngine) publishApplied(o Outcome) {
	if e.bus == nil {
		return
	}
	base := func(t EventType, player board.Player) Event {
		evt := NewEvent(t, e.gameID, player.String())
		evt.Origin = o.Origin.String()
		evt.Destination = o.Destination.String()
		return evt
	}

	if n := o.CapturedStones(); n > 0 {
		evt := base(EventStonesCaptured, o.Mover)
		evt.Amount = n
		e.bus.Publish(evt)
	}
	if o.RimCleared > 0 {
		evt := base(EventRimCleared, o.Mover)
		evt.Amount = o.RimCleared
		e.bus.Publish(evt)
	}
	e.bus.Publish(base(EventMoveApplied, o.Mover))
	if o.OpponentLostRing {
		e.bus.Publish(base(EventRingLost, o.Mover.Opponent()))
	}
}
