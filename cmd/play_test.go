package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/game"
)

func newLayoutSession(t *testing.T, rows ...string) *game.Game {
	t.Helper()

	config := game.NewGameConfig()
	config.Layout = &game.BoardLayout{Board: strings.Join(rows, "\n")}
	session, err := game.New(config)
	require.NoError(t, err)
	return session
}

func TestPlayLoopWins(t *testing.T) {
	session := newLayoutSession(t, "###", "###", "###")

	var out bytes.Buffer
	require.NoError(t, playLoop(session, strings.NewReader("r 1 1\nq\n"), &out))

	assert.Contains(t, out.String(), "WIN!")
	assert.Equal(t, game.Won, session.Board().State())
}

func TestPlayLoopLoses(t *testing.T) {
	session := newLayoutSession(t, "O#", "##")

	var out bytes.Buffer
	require.NoError(t, playLoop(session, strings.NewReader("f 1 0\nr 0 0\n"), &out))

	assert.Contains(t, out.String(), "LOSE :(")
	state, _ := session.Board().StateAt(1, 0)
	assert.Equal(t, game.FlagWrong, state)
}

func TestPlayLoopCommands(t *testing.T) {
	session := newLayoutSession(t, "O#", "##")
	first := session.Board()

	input := strings.Join([]string{
		"",
		"dance",
		"r 1",
		"r one 1",
		"f 1 one",
		"r 9 9",
		"f 0 0",
		"c 1 1",
		"n",
		"quit",
		"r 1 1",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, playLoop(session, strings.NewReader(input), &out))

	output := out.String()
	assert.Contains(t, output, `unknown command "dance"`)
	assert.Contains(t, output, "expected 2 coordinates, got 1")
	assert.Contains(t, output, `invalid column "one"`)
	assert.Contains(t, output, `invalid row "one"`)

	assert.True(t, first.CellAt(0, 0).Flagged)
	assert.NotSame(t, first, session.Board())
	assert.Equal(t, 2, session.NumGames())
	assert.False(t, session.Board().CellAt(1, 1).Revealed, "input after quit is ignored")
}

func TestParseCoords(t *testing.T) {
	tests := []struct {
		args []string
		x, y int
		err  string
	}{
		{[]string{"3", "4"}, 3, 4, ""},
		{[]string{"-1", "0"}, -1, 0, ""},
		{[]string{"3"}, 0, 0, "expected 2 coordinates, got 1"},
		{[]string{"3", "4", "5"}, 0, 0, "expected 2 coordinates, got 3"},
		{[]string{"a", "4"}, 0, 0, `invalid column "a"`},
		{[]string{"3", "b"}, 0, 0, `invalid row "b"`},
	}

	for _, test := range tests {
		x, y, err := parseCoords(test.args)
		if test.err != "" {
			assert.EqualError(t, err, test.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.x, x)
		assert.Equal(t, test.y, y)
	}
}

func TestRenderBoard(t *testing.T) {
	session := newLayoutSession(t, "O##", "###")
	board := session.Board()

	board.Flag(0, 0)
	board.Reveal(1, 0)
	rendered := renderBoard(board)

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "0")
	assert.Contains(t, lines[1], "F")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[3], "000")
	assert.NotContains(t, rendered, "WIN!")
}

func TestTileGlyph(t *testing.T) {
	for _, state := range game.CellStates {
		assert.NotEmpty(t, tileGlyph(state), state.String())
	}
	assert.Equal(t, "8", tileGlyph(game.Number8))
}
