package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrInvalidLayout = errors.New("invalid board layout")
)

// InvalidConfigError describes board dimensions or a mine count that cannot
// produce a board. It unwraps to ErrInvalidConfig.
type InvalidConfigError struct {
	Width, Height int
	NumMines      int
}

func (e *InvalidConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.NumMines < 0:
		return fmt.Sprintf("cannot create a board with a negative number of mines: %d", e.NumMines)
	case e.NumMines > e.Width*e.Height:
		return fmt.Sprintf("not enough space for %d mines (%d > %d * %d)",
			e.NumMines, e.NumMines, e.Width, e.Height)
	default:
		return "cannot create board: unknown error"
	}
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func validateDimensions(width, height, numMines int) error {
	if width <= 0 || height <= 0 || numMines < 0 || numMines > width*height {
		return &InvalidConfigError{Width: width, Height: height, NumMines: numMines}
	}
	return nil
}

// ClampMines limits numMines to what a width x height board can hold.
func ClampMines(width, height, numMines int) int {
	if width <= 0 || height <= 0 || numMines < 0 {
		return 0
	}
	return min(numMines, width*height)
}
