package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/game"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the YAML layout of a generated board",
	Long: `Generate a board from the current configuration and print its layout.
The output can be passed back with --layout to play the same board again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := game.New(gameConfig)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), session.Board().Layout().Serialize())
		return nil
	},
}
