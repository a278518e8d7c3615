package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameConfigValidate(t *testing.T) {
	config := NewGameConfig()
	assert.NoError(t, config.Validate())

	config.NumMines = config.Width*config.Height + 1
	assert.True(t, errors.Is(config.Validate(), ErrInvalidConfig))

	config.Layout = &BoardLayout{Board: "O#"}
	assert.NoError(t, config.Validate(), "layout supplies the dimensions")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "minefield.yml")
	require.NoError(t, os.WriteFile(path, []byte("width: 12\nheight: 8\nmines: 20\nseed: 5\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, config.Width)
	assert.Equal(t, 8, config.Height)
	assert.Equal(t, 20, config.NumMines)
	assert.Equal(t, int64(5), config.Seed)
	assert.True(t, config.LoadLayoutFresh, "unset keys keep their defaults")

	withLayout := filepath.Join(dir, "layout.yml")
	require.NoError(t, os.WriteFile(withLayout, []byte("layout:\n  board: |-\n    O#\n    #.\nload_layout_fresh: false\n"), 0o644))

	config, err = LoadConfig(withLayout)
	require.NoError(t, err)
	require.NotNil(t, config.Layout)
	assert.Equal(t, []string{"O#", "#."}, config.Layout.Rows())
	assert.False(t, config.LoadLayoutFresh)

	_, err = LoadConfig(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("width: [\n"), 0o644))
	_, err = LoadConfig(broken)
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"beginner", "expert", "intermediate"}, PresetNames())

	tests := []struct {
		name                    string
		width, height, numMines int
	}{
		{"beginner", 9, 9, 10},
		{"intermediate", 16, 16, 40},
		{"expert", 30, 16, 99},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := NewGameConfig()
			require.NoError(t, config.ApplyPreset(test.name))
			assert.Equal(t, test.width, config.Width)
			assert.Equal(t, test.height, config.Height)
			assert.Equal(t, test.numMines, config.NumMines)
			assert.NoError(t, config.Validate())
		})
	}

	config := NewGameConfig()
	assert.Error(t, config.ApplyPreset("nightmare"))
	assert.Equal(t, NewGameConfig(), config)
}

func TestClampMines(t *testing.T) {
	tests := []struct {
		width, height, numMines int
		expected                int
	}{
		{9, 9, 10, 10},
		{3, 3, 10, 9},
		{3, 3, 9, 9},
		{0, 3, 4, 0},
		{3, -1, 4, 0},
		{3, 3, -4, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, ClampMines(test.width, test.height, test.numMines),
			"%dx%d(%d)", test.width, test.height, test.numMines)
	}
}

func TestNewGame(t *testing.T) {
	config := NewGameConfig()
	require.NoError(t, config.ApplyPreset("beginner"))
	config.Seed = 77

	session, err := New(config)
	require.NoError(t, err)
	first := session.Board()
	assert.Equal(t, 1, session.NumGames())
	assert.Equal(t, 10, first.NumMines())
	assert.NotZero(t, first.Seed())

	for _, cell := range first.Cells() {
		if cell.IsMine() {
			first.Reveal(cell.X, cell.Y)
			break
		}
	}
	require.Equal(t, Lost, first.State())

	second, err := session.NewGame()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Same(t, second, session.Board())
	assert.Equal(t, Ongoing, second.State())
	assert.Equal(t, 2, session.NumGames())
	assert.Equal(t, Lost, first.State(), "old board is left alone")
}

func TestNewGameSameSeed(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 1234

	first, err := New(config)
	require.NoError(t, err)
	second, err := New(config)
	require.NoError(t, err)

	assert.Equal(t, first.Board().Layout(), second.Board().Layout())

	_, err = first.NewGame()
	require.NoError(t, err)
	assert.NotEqual(t, first.Board().Seed(), second.Board().Seed())
}

func TestNewGameInvalid(t *testing.T) {
	config := NewGameConfig()
	config.Width = 0

	session, err := New(config)
	assert.Nil(t, session)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	var configErr *InvalidConfigError
	assert.True(t, errors.As(err, &configErr))
	assert.Equal(t, 0, configErr.Width)
}

func TestNewGameFromLayout(t *testing.T) {
	config := NewGameConfig()
	config.Layout = &BoardLayout{Seed: 8, Board: "O.\n##"}
	config.LoadLayoutFresh = false

	session, err := New(config)
	require.NoError(t, err)
	board := session.Board()
	assert.Equal(t, 2, board.Width())
	assert.Equal(t, 1, board.NumMines())
	assert.True(t, board.CellAt(1, 0).Revealed)
	assert.Equal(t, int64(8), board.Seed())

	config.Layout = &BoardLayout{Board: "#?"}
	_, err = New(config)
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}
