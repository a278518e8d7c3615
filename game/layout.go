package game

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// BoardLayout is a textual description of a board: one line per row, one
// character per cell.
//
//	*  exploded mine      x  revealed mine
//	F  flagged mine       O  hidden mine
//	f  flagged safe cell  .  revealed safe cell
//	#  hidden safe cell
type BoardLayout struct {
	Seed  int64  `yaml:"seed"`
	Board string `yaml:"board"`
}

func (layout *BoardLayout) Serialize() string {
	out, err := yaml.Marshal(layout)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (layout *BoardLayout) Rows() []string {
	return strings.Split(strings.TrimRight(layout.Board, "\n"), "\n")
}

// CreateBoard builds the board the layout describes. With fresh set, only the
// mine positions are kept and every cell starts hidden and unflagged.
func (layout *BoardLayout) CreateBoard(fresh bool) (*Board, error) {
	rows := layout.Rows()

	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidLayout, "empty board")
	}

	var mines []Position
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %d has %d cells, expected %d", y, len(row), width)
		}

		for x := 0; x < width; x++ {
			switch row[x] {
			case '*', 'x', 'F', 'O':
				mines = append(mines, Position{x, y})
			case 'f', '.', '#':
			default:
				return nil, errors.Wrapf(ErrInvalidLayout, "unknown cell %q at (%d, %d)", row[x], x, y)
			}
		}
	}

	board, err := NewBoardWithMines(width, height, mines)
	if err != nil {
		return nil, err
	}
	board.seed = layout.Seed

	if !fresh {
		if err := board.applyMarks(rows); err != nil {
			return nil, err
		}
	}

	Log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  len(mines),
		"fresh":  fresh,
		"state":  board.state.String(),
	}).Debug("board loaded from layout")

	return board, nil
}

// applyMarks restores reveal, flag and explosion marks from layout rows whose
// shape has already been checked.
func (board *Board) applyMarks(rows []string) error {
	var exploded *Cell

	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			cell := &board.cells[y][x]

			switch row[x] {
			case '*':
				if exploded != nil {
					return errors.Wrapf(ErrInvalidLayout, "second exploded mine at %v", cell.Position)
				}
				exploded = cell
				cell.Revealed = true
				cell.Exploded = true
			case 'x', '.':
				board.reveal(cell)
			case 'F', 'f':
				board.setFlagged(cell, true)
			}
		}
	}

	if exploded != nil {
		board.state = Lost
	} else {
		board.CheckWin()
	}
	return nil
}

// Layout describes the board in its current state.
func (board *Board) Layout() *BoardLayout {
	var b strings.Builder
	for y, row := range board.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range row {
			b.WriteByte(row[x].serialize())
		}
	}

	return &BoardLayout{
		Seed:  board.seed,
		Board: b.String(),
	}
}

func LoadLayout(in string) (*BoardLayout, error) {
	var layout BoardLayout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, errors.Wrap(err, "failed to parse board layout")
	}
	return &layout, nil
}

func ReadLayout(path string) (*BoardLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read layout %s", path)
	}
	return LoadLayout(string(data))
}
