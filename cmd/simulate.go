package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"golang.org/x/sync/errgroup"
)

type directorFactory func(rng *rand.Rand) game.Director

var directors = map[string]directorFactory{
	"random": func(rng *rand.Rand) game.Director {
		return random.New(rng)
	},
	"constraint": func(rng *rand.Rand) game.Director {
		return constraint.New(rng)
	},
}

type simulationOptions struct {
	Games    int
	Parallel int
	Director string
	MaxSteps int
}

type simulationResult struct {
	Wins, Losses, Unfinished int64
}

func (result simulationResult) Games() int64 {
	return result.Wins + result.Losses + result.Unfinished
}

func (result simulationResult) WinRate() float64 {
	if result.Games() == 0 {
		return 0
	}
	return float64(result.Wins) / float64(result.Games())
}

var simOptions = simulationOptions{
	Games:    100,
	Parallel: 4,
	Director: "constraint",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a computer player play many games and report how it did",
	RunE: func(cmd *cobra.Command, args []string) error {
		bar := pb.StartNew(simOptions.Games)
		result, err := simulate(cmd.Context(), gameConfig, simOptions, func() { bar.Increment() })
		bar.Finish()
		if err != nil {
			return err
		}

		game.Log.WithFields(logrus.Fields{
			"director":   simOptions.Director,
			"wins":       result.Wins,
			"losses":     result.Losses,
			"unfinished": result.Unfinished,
		}).Info("simulation finished")

		fmt.Fprintf(cmd.OutOrStdout(), "%d games: %d won, %d lost, %d unfinished (%.1f%% win rate)\n",
			result.Games(), result.Wins, result.Losses, result.Unfinished, 100*result.WinRate())
		return nil
	},
}

// simulate plays options.Games independent boards, at most options.Parallel
// at a time. Every board has its own session and director, so nothing is
// shared between goroutines but the counters.
func simulate(ctx context.Context, config game.GameConfig, options simulationOptions, onGame func()) (simulationResult, error) {
	newDirector, ok := directors[options.Director]
	if !ok {
		return simulationResult{}, fmt.Errorf("unknown director %q", options.Director)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))

	var wins, losses, unfinished int64

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(options.Parallel, 1))

	for i := 0; i < options.Games; i++ {
		gameSeed := seeds.Int63()

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			boardConfig := config
			boardConfig.Seed = gameSeed
			session, err := game.New(boardConfig)
			if err != nil {
				return err
			}

			director := newDirector(rand.New(rand.NewSource(gameSeed)))
			switch game.Play(session.Board(), director, options.MaxSteps) {
			case game.Won:
				atomic.AddInt64(&wins, 1)
			case game.Lost:
				atomic.AddInt64(&losses, 1)
			default:
				atomic.AddInt64(&unfinished, 1)
			}

			if onGame != nil {
				onGame()
			}
			return nil
		})
	}

	err := group.Wait()
	return simulationResult{Wins: wins, Losses: losses, Unfinished: unfinished}, err
}

func init() {
	flags := simulateCmd.Flags()
	flags.IntVarP(&simOptions.Games, "games", "n", simOptions.Games, "Number of games to play")
	flags.IntVarP(&simOptions.Parallel, "parallel", "p", simOptions.Parallel, "Number of games played at once")
	flags.StringVarP(&simOptions.Director, "director", "d", simOptions.Director, "Computer player: random or constraint")
	flags.IntVar(&simOptions.MaxSteps, "max-steps", 0, "Give up on a game after this many steps (0 = no limit)")
}
