package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/game"
)

var gameConfig = game.NewGameConfig()

var (
	flagWidth    int
	flagHeight   int
	flagMines    int
	flagSeed     int64
	flagPreset   presetValue
	flagConfig   string
	flagLayout   string
	flagFresh    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play or simulate Minesweeper boards",
	Long: `minefield is a Minesweeper engine with a terminal front end and
computer players.

Play a game in the terminal
	minefield play --preset beginner

Let the computer play many games
	minefield simulate --games 1000 --director constraint

Print the layout of a generated board
	minefield layout -w 9 -h 9 -m 10 --seed 42
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(flagLogLevel); err != nil {
			return err
		}

		config, err := loadGameConfig(cmd)
		if err != nil {
			return err
		}
		gameConfig = config

		game.Log.WithFields(gameConfig.Fields()).Debug("configuration loaded")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(levelName string) error {
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return err
	}

	game.Log.SetOutput(os.Stderr)
	game.Log.SetLevel(level)
	game.Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// loadGameConfig layers the configuration: defaults, then the config file,
// then the preset, then any board flag given explicitly.
func loadGameConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := game.NewGameConfig()

	if flagConfig != "" {
		var err error
		if config, err = game.LoadConfig(flagConfig); err != nil {
			return config, err
		}
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(string(flagPreset)); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = flagWidth
	}
	if flags.Changed("height") {
		config.Height = flagHeight
	}
	if flags.Changed("mines") {
		config.NumMines = flagMines
	}
	if flags.Changed("seed") {
		config.Seed = flagSeed
	}
	if flags.Changed("fresh") {
		config.LoadLayoutFresh = flagFresh
	}

	if flagLayout != "" {
		layout, err := game.ReadLayout(flagLayout)
		if err != nil {
			return config, err
		}
		config.Layout = layout
	}

	return config, config.Validate()
}

type presetValue string

func (preset *presetValue) String() string {
	return string(*preset)
}

func (preset *presetValue) Set(value string) error {
	if _, isValid := game.Presets[value]; !isValid {
		return fmt.Errorf("invalid preset, expected one of: %s", strings.Join(game.PresetNames(), ", "))
	}
	*preset = presetValue(value)
	return nil
}

func (preset *presetValue) Type() string {
	return "preset"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	defaults := game.NewGameConfig()
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&flagWidth, "width", "w", defaults.Width, "Width of game board, in cells")
	flags.IntVarP(&flagHeight, "height", "h", defaults.Height, "Height of game board, in cells")
	flags.IntVarP(&flagMines, "mines", "m", defaults.NumMines, "Number of mines to place in the game board")
	flags.Int64Var(&flagSeed, "seed", 0, "Random seed (0 = based on time)")
	flags.Var(&flagPreset, "preset", "Board preset: "+strings.Join(game.PresetNames(), ", "))
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	flags.StringVar(&flagLayout, "layout", "", "Path to a YAML board layout to play instead of a random board")
	flags.BoolVar(&flagFresh, "fresh", defaults.LoadLayoutFresh, "Hide and unflag every cell of the loaded layout")
	flags.StringVar(&flagLogLevel, "log-level", "warning", "Log level (debug, info, warning, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutCmd)
}
