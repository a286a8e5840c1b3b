package game

import (
	"time"

	"github.com/asa-holland/gess-strategy-game/internal/game/board"
)

// GameView is a point-in-time copy of a managed game.
type GameView struct {
	GameID        string
	Status        Status
	CurrentPlayer board.Player
	Board         board.Board
	Fingerprint   uint64
	BlackStones   int
	WhiteStones   int
	Plies         int
	StartedAt     time.Time
}

func newGameView(id string, s *Session, startedAt time.Time) *GameView {
	b := s.BoardSnapshot()
	return &GameView{
		GameID:        id,
		Status:        s.Status(),
		CurrentPlayer: s.CurrentPlayer(),
		Board:         b,
		Fingerprint:   b.Fingerprint(),
		BlackStones:   b.Count(board.Black),
		WhiteStones:   b.Count(board.White),
		Plies:         s.Plies(),
		StartedAt:     startedAt,
	}
}
