package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play a game by typing one command per line:

	r X Y   reveal the cell at column X, row Y
	f X Y   toggle a flag on the cell
	c X Y   chord: reveal around a number whose mines are all flagged
	n       start a new game
	q       quit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := game.New(gameConfig)
		if err != nil {
			return err
		}
		return playLoop(session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func playLoop(session *game.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, renderBoard(session.Board()))
	for fmt.Fprint(out, "> "); scanner.Scan(); fmt.Fprint(out, "> ") {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		board := session.Board()
		switch fields[0] {
		case "q", "quit":
			return nil
		case "n", "new":
			if _, err := session.NewGame(); err != nil {
				return err
			}
		case "r", "reveal", "f", "flag", "c", "chord":
			x, y, err := parseCoords(fields[1:])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}

			// Coordinates off the board are no-ops, like a click outside it
			switch fields[0][0] {
			case 'r':
				board.Reveal(x, y)
			case 'f':
				board.Flag(x, y)
			case 'c':
				board.Chord(x, y)
			}
		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
			continue
		}

		fmt.Fprint(out, renderBoard(session.Board()))
	}

	return scanner.Err()
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 coordinates, got %d", len(args))
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q", args[1])
	}
	return x, y, nil
}
