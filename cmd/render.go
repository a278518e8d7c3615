package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/they4kman/minefield/game"
)

var tileGlyphs = map[game.CellState]string{
	game.Unrevealed: "#",
	game.Empty:      ".",
	game.Flag:       "F",
	game.FlagWrong:  "X",
	game.Mine:       "*",
	game.MineLosing: "@",
}

var tileStyles = map[game.CellState]lipgloss.Style{
	game.Unrevealed: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	game.Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	game.Number1:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	game.Number2:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	game.Number3:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	game.Number4:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	game.Number5:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	game.Number6:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	game.Number7:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	game.Number8:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	game.Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	game.FlagWrong:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true),
	game.Mine:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	game.MineLosing: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
}

var (
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	wonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func tileGlyph(state game.CellState) string {
	if state >= game.Number1 && state <= game.Number8 {
		return strconv.Itoa(int(state))
	}
	return tileGlyphs[state]
}

// renderBoard draws the board one row per line, with column and row indexes
// (mod 10) along the edges, followed by a status line.
func renderBoard(board *game.Board) string {
	var b strings.Builder

	b.WriteString("   ")
	for x := 0; x < board.Width(); x++ {
		b.WriteString(axisStyle.Render(strconv.Itoa(x % 10)))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')

	for y := 0; y < board.Height(); y++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%2d", y%100)))
		b.WriteByte(' ')

		for x := 0; x < board.Width(); x++ {
			state, _ := board.StateAt(x, y)
			b.WriteString(tileStyles[state].Render(tileGlyph(state)))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%03d", board.MinesRemaining())
	switch board.State() {
	case game.Won:
		b.WriteString("   " + wonStyle.Render("WIN!"))
	case game.Lost:
		b.WriteString("   " + lostStyle.Render("LOSE :("))
	}
	b.WriteByte('\n')

	return b.String()
}
