package game

import (
	"fmt"
)

type Position struct {
	X, Y int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

func (pos Position) Add(offset Position) Position {
	return Position{pos.X + offset.X, pos.Y + offset.Y}
}

// Cell is a snapshot of one square of the board. Values handed out by the
// Board are copies; mutating them has no effect on the game.
type Cell struct {
	Position

	Kind     CellKind
	NumMines int // mines among the 8 surrounding cells; 0 for mines

	Revealed, Flagged bool
	Exploded          bool
}

// Offsets of the 8 cells surrounding a cell, used for mine counting
var neighborOffsets = []Position{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// Offsets of the 4 orthogonal cells, used for flooding. Diagonals never
// propagate a flood, even though they count towards the number.
var orthogonalOffsets = []Position{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

func invalidCellAt(x, y int) Cell {
	return Cell{
		Position: Position{x, y},
		Kind:     InvalidCell,
	}
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.X, cell.Y)
}

func (cell Cell) IsValid() bool {
	return cell.Kind != InvalidCell
}

func (cell Cell) IsMine() bool {
	return cell.Kind == MineCell
}

// IsHidden reports whether the cell can still be revealed or flagged.
func (cell Cell) IsHidden() bool {
	return cell.IsValid() && !cell.Revealed
}

// State maps the cell to the tile to draw. lost tells whether the board the
// cell belongs to was lost, which exposes wrong flags.
func (cell Cell) State(lost bool) CellState {
	switch {
	case cell.Revealed:
		switch cell.Kind {
		case MineCell:
			if cell.Exploded {
				return MineLosing
			}
			return Mine
		default:
			return CellState(cell.NumMines)
		}
	case cell.Flagged:
		if lost && !cell.IsMine() {
			return FlagWrong
		}
		return Flag
	default:
		return Unrevealed
	}
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.IsMine():
		switch {
		case cell.Exploded:
			return '*'
		case cell.Revealed:
			return 'x'
		case cell.Flagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.Flagged:
		return 'f'
	case cell.Revealed:
		return '.'
	default:
		return '#'
	}
}
