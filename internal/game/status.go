package game

import "github.com/asa-holland/gess-strategy-game/internal/game/board"

// Status is the lifecycle state of a session. It only ever moves from
// StatusInProgress to one of the won states.
type Status int

const (
	StatusInProgress Status = iota
	StatusBlackWon
	StatusWhiteWon
)

var statusNames = map[Status]string{
	StatusInProgress: "UNFINISHED",
	StatusBlackWon:   "BLACK_WON",
	StatusWhiteWon:   "WHITE_WON",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Finished reports whether the game has a winner.
func (s Status) Finished() bool {
	return s == StatusBlackWon || s == StatusWhiteWon
}

func wonBy(p board.Player) Status {
	if p == board.PlayerBlack {
		return StatusBlackWon
	}
	return StatusWhiteWon
}
