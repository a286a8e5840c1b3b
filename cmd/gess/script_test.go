package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asa-holland/gess-strategy-game/internal/config"
	"github.com/asa-holland/gess-strategy-game/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(showBoard bool) *config.Config {
	return &config.Config{
		Logging: config.LoggingConfig{Level: "debug", Format: "console"},
		Game:    config.GameConfig{MaxSessions: 1},
		Display: config.DisplayConfig{Unicode: false, ShowBoard: showBoard},
	}
}

const winningScript = `# black wins by taking the last white ring
c3 c5
r18 r16
r3 r5
r16 q16
k6 n9
m15 j12
r5 r3
j13 h15
j7 h7
j10 h12
i3 i13
c15 c12
i13 l16
`

func TestRunScriptWinningGame(t *testing.T) {
	var out bytes.Buffer
	status, err := runScript(strings.NewReader(winningScript), &out, testConfig(false), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, game.StatusBlackWon, status)
	// Line numbers count the leading comment.
	assert.Contains(t, out.String(), "14: i13-l16")
	assert.Contains(t, out.String(), "2: c3-c5\n")
	assert.Contains(t, out.String(), "status: BLACK_WON  to move: WHITE")
}

func TestRunScriptReportsRejections(t *testing.T) {
	script := "r7 r10\nr3 v3\nc3\nc3 c5\n"
	var out bytes.Buffer
	status, err := runScript(strings.NewReader(script), &out, testConfig(false), zaptest.NewLogger(t))
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, game.StatusInProgress, status)
	assert.Contains(t, text, "1: r7-r10 rejected: NO_DIRECTION_STONE")
	assert.Contains(t, text, "2: r3-v3 rejected: invalid coordinate or game over")
	assert.Contains(t, text, `3: cannot parse "c3"`)
	assert.Contains(t, text, "4: c3-c5\n")
	assert.Contains(t, text, "to move: WHITE")
}

func TestRunScriptResign(t *testing.T) {
	var out bytes.Buffer
	status, err := runScript(strings.NewReader("resign\nresign\nc3 c5\n"), &out, testConfig(false), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, game.StatusWhiteWon, status)
	assert.Contains(t, out.String(), "1: resigned")
	assert.Contains(t, out.String(), "2: resign rejected: game is over")
	assert.Contains(t, out.String(), "3: c3-c5 rejected: invalid coordinate or game over")
}

func TestRunScriptPrintsBoard(t *testing.T) {
	var out bytes.Buffer
	_, err := runScript(strings.NewReader(""), &out, testConfig(true), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Contains(t, out.String(), " 3 . B B B . B . B B B B . B . B . B B B .\n")
	assert.Contains(t, out.String(), "   a b c d e f g h i j k l m n o p q r s t\n")
}

func TestRunMissingScript(t *testing.T) {
	_, err := run(filepath.Join(t.TempDir(), "absent.txt"), testConfig(false), zaptest.NewLogger(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.txt")
	require.NoError(t, os.WriteFile(path, []byte("resign\n"), 0o644))

	status, err := run(path, testConfig(false), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, game.StatusWhiteWon, status)
}
