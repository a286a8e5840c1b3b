package game

import (
	"errors"
	"fmt"

	"github.com/asa-holland/gess-strategy-game/internal/game/board"
	"github.com/asa-holland/gess-strategy-game/internal/game/rules"
	"go.uber.org/zap"
)

// ErrGameOver is returned for any move or resignation after the game has been won.
var ErrGameOver = errors.New("game is over")

// Session is a single game of Gess: the board, whose turn it is and the status.
// A Session is not safe for concurrent use; Manager serializes access.
type Session struct {
	id      string
	logger  *zap.Logger
	bus     *rules.EventBus
	engine  *rules.MoveEngine
	board   *board.Board
	current board.Player
	status  Status
	plies   int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used by the session and its move engine.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventBus publishes move, capture and game-over events to bus.
func WithEventBus(bus *rules.EventBus) SessionOption {
	return func(s *Session) {
		s.bus = bus
	}
}

// WithGameID tags log entries and events with id.
func WithGameID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// WithBoard starts the session from b instead of the opening position.
// The session takes ownership of b.
func WithBoard(b *board.Board) SessionOption {
	return func(s *Session) {
		if b != nil {
			s.board = b
		}
	}
}

// NewSession starts a game from the opening position with Black to move.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		logger:  zap.NewNop(),
		board:   board.NewBoard(),
		current: board.PlayerBlack,
		status:  StatusInProgress,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = rules.NewMoveEngine(s.id, s.logger, s.bus)
	return s
}

// ID returns the game id given with WithGameID, if any.
func (s *Session) ID() string {
	return s.id
}

// MakeMove moves the current player's piece centered on origin to destination.
// It returns false, leaving the game untouched, for malformed coordinates,
// illegal moves and moves after the game is over.
func (s *Session) MakeMove(origin, destination string) bool {
	return s.MoveText(origin, destination) == nil
}

// MoveText parses both coordinates and calls Move.
func (s *Session) MoveText(origin, destination string) error {
	o, err := board.ParseCoordinate(origin)
	if err != nil {
		return err
	}
	d, err := board.ParseCoordinate(destination)
	if err != nil {
		return err
	}
	return s.Move(o, d)
}

// Move is the typed form of MakeMove. Errors wrap ErrGameOver or rules.ErrIllegalMove.
func (s *Session) Move(origin, destination board.Coordinate) error {
	if s.status.Finished() {
		return fmt.Errorf("move %s-%s: %w", origin, destination, ErrGameOver)
	}

	mover := s.current
	outcome, err := s.engine.AttemptMove(s.board, mover, origin, destination)
	if err != nil {
		return err
	}

	s.plies++
	if outcome.OpponentLostRing {
		s.finish(mover, "ring destroyed")
	}
	// The turn passes even on the winning move.
	s.current = mover.Opponent()
	return nil
}

// Resign ends the game in favour of the player not on move. It returns false
// if the game is already over.
func (s *Session) Resign() bool {
	if s.status.Finished() {
		return false
	}
	loser := s.current
	if s.bus != nil {
		s.bus.Publish(rules.NewEvent(rules.EventPlayerResigned, s.id, loser.String()))
	}
	s.finish(loser.Opponent(), "resignation")
	return true
}

func (s *Session) finish(winner board.Player, cause string) {
	s.status = wonBy(winner)
	s.logger.Info("game won",
		zap.String("game_id", s.id),
		zap.String("player", winner.String()),
		zap.String("cause", cause),
		zap.Int("plies", s.plies),
	)
	if s.bus != nil {
		evt := rules.NewEvent(rules.EventGameWon, s.id, winner.String())
		evt.Metadata["cause"] = cause
		s.bus.Publish(evt)
	}
}

// BoardSnapshot returns a copy of the board. Changing it does not affect the game.
func (s *Session) BoardSnapshot() board.Board {
	return *s.board
}

// CurrentPlayer returns the player to move.
func (s *Session) CurrentPlayer() board.Player {
	return s.current
}

// Status returns the game status.
func (s *Session) Status() Status {
	return s.status
}

// Winner returns the winning player once the game is over.
func (s *Session) Winner() (board.Player, bool) {
	switch s.status {
	case StatusBlackWon:
		return board.PlayerBlack, true
	case StatusWhiteWon:
		return board.PlayerWhite, true
	default:
		return board.PlayerBlack, false
	}
}

// Plies returns the number of moves applied so far.
func (s *Session) Plies() int {
	return s.plies
}
