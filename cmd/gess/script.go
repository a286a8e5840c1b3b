package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/asa-holland/gess-strategy-game/internal/config"
	"github.com/asa-holland/gess-strategy-game/internal/game"
	"github.com/asa-holland/gess-strategy-game/internal/game/board"
	"github.com/asa-holland/gess-strategy-game/internal/game/rules"
	"go.uber.org/zap"
)

// runScript plays one game from the lines of in and reports each step to out.
// A line is "<origin> <destination>", "resign", blank, or a # comment.
// Illegal moves are reported and skipped; only read and write failures are errors.
func runScript(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) (game.Status, error) {
	mgr := game.NewManager(logger, cfg.Game.MaxSessions)
	id, err := mgr.StartGame()
	if err != nil {
		return game.StatusInProgress, err
	}
	defer func() {
		if err := mgr.EndGame(id); err != nil {
			logger.Warn("failed to end game", zap.String("game_id", id), zap.Error(err))
		}
	}()

	glyphs := board.ASCIIGlyphs
	if cfg.Display.Unicode {
		glyphs = board.UnicodeGlyphs
	}

	// Rejections are published synchronously from inside MakeMove.
	var lastReason rules.Reason
	mgr.Events().SubscribeTyped(rules.EventMoveRejected, func(e rules.Event) {
		lastReason = e.Reason
	})

	w := bufio.NewWriter(out)
	defer w.Flush()

	show := func() error {
		view, err := mgr.GameView(id)
		if err != nil {
			return err
		}
		if cfg.Display.ShowBoard {
			fmt.Fprint(w, view.Board.Render(glyphs))
		}
		_, err = fmt.Fprintf(w, "status: %s  to move: %s\n", view.Status, view.CurrentPlayer)
		return err
	}
	if err := show(); err != nil {
		return game.StatusInProgress, err
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && strings.EqualFold(fields[0], "resign"):
			ok, err := mgr.Resign(id)
			if err != nil {
				return game.StatusInProgress, err
			}
			if !ok {
				fmt.Fprintf(w, "%d: resign rejected: game is over\n", lineNo)
				continue
			}
			fmt.Fprintf(w, "%d: resigned\n", lineNo)
		case len(fields) == 2:
			lastReason = rules.ReasonNone
			ok, err := mgr.MakeMove(id, fields[0], fields[1])
			if err != nil {
				return game.StatusInProgress, err
			}
			if !ok {
				fmt.Fprintf(w, "%d: %s-%s rejected: %s\n", lineNo, fields[0], fields[1], describeRejection(lastReason))
				continue
			}
			fmt.Fprintf(w, "%d: %s-%s\n", lineNo, fields[0], fields[1])
		default:
			fmt.Fprintf(w, "%d: cannot parse %q\n", lineNo, line)
			continue
		}
		if err := show(); err != nil {
			return game.StatusInProgress, err
		}
	}
	if err := scanner.Err(); err != nil {
		return game.StatusInProgress, fmt.Errorf("read script: %w", err)
	}

	view, err := mgr.GameView(id)
	if err != nil {
		return game.StatusInProgress, err
	}
	return view.Status, nil
}

// describeRejection names the rule that failed. Moves rejected before reaching
// the engine carry no reason.
func describeRejection(reason rules.Reason) string {
	if reason == rules.ReasonNone {
		return "invalid coordinate or game over"
	}
	return string(reason)
}
