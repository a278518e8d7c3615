package game

import (
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	NumMines int `yaml:"mines"`

	// Seed for the session's random source; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Layout to build every board from, instead of placing mines at random
	Layout *BoardLayout `yaml:"layout,omitempty"`
	// Whether to set all cells as unrevealed when loading the Layout
	LoadLayoutFresh bool `yaml:"load_layout_fresh"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:           30,
		Height:          16,
		NumMines:        99,
		LoadLayoutFresh: true,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return config, nil
}

// Validate checks the board dimensions. A config with a Layout takes its
// dimensions from the layout and is checked when the board is built.
func (config GameConfig) Validate() error {
	if config.Layout != nil {
		return nil
	}
	return validateDimensions(config.Width, config.Height, config.NumMines)
}

func (config GameConfig) Fields() logrus.Fields {
	return logrus.Fields{
		"width":      config.Width,
		"height":     config.Height,
		"mines":      config.NumMines,
		"seed":       config.Seed,
		"has_layout": config.Layout != nil,
	}
}

type Preset struct {
	Width, Height int
	NumMines      int
}

var Presets = map[string]Preset{
	"beginner":     {Width: 9, Height: 9, NumMines: 10},
	"intermediate": {Width: 16, Height: 16, NumMines: 40},
	"expert":       {Width: 30, Height: 16, NumMines: 99},
}

// PresetNames returns the preset names in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (config *GameConfig) ApplyPreset(name string) error {
	preset, ok := Presets[name]
	if !ok {
		return errors.Errorf("unknown preset %q", name)
	}

	config.Width = preset.Width
	config.Height = preset.Height
	config.NumMines = preset.NumMines
	return nil
}

// Game is a play session: it owns the one live board and replaces it
// wholesale whenever a new game starts.
type Game struct {
	config GameConfig
	rand   *rand.Rand
	board  *Board

	numGames int
}

// New starts a session and deals its first board.
func New(config GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := &Game{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
	if _, err := game.NewGame(); err != nil {
		return nil, err
	}

	Log.WithFields(config.Fields()).Debug("game session started")
	return game, nil
}

// NewGame discards the current board and deals a fresh one. On error the
// previous board stays live.
func (game *Game) NewGame() (*Board, error) {
	seed := game.rand.Int63()

	var board *Board
	var err error
	if game.config.Layout != nil {
		board, err = game.config.Layout.CreateBoard(game.config.LoadLayoutFresh)
	} else {
		board, err = NewBoard(
			game.config.Width,
			game.config.Height,
			game.config.NumMines,
			rand.New(rand.NewSource(seed)),
		)
		if board != nil {
			board.seed = seed
		}
	}
	if err != nil {
		return nil, err
	}

	game.board = board
	game.numGames++
	return board, nil
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) Config() GameConfig {
	return game.config
}

// NumGames counts the boards dealt in this session, the current one included.
func (game *Game) NumGames() int {
	return game.numGames
}
