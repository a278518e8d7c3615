package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/util/collections"
)

// Board is one minefield. It is mutated in place by Reveal, Flag and Chord and
// is not safe for concurrent use; a new game gets a new Board.
type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	state    BoardState
	numFlags int
	seed     int64

	// Safe cells not yet revealed. The game is won once this is empty.
	remainingCells collections.Set[Position]
}

// NewBoard builds a width x height board holding numMines mines at random
// positions drawn from rng. A nil rng is seeded from the clock.
func NewBoard(width, height, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateDimensions(width, height, numMines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board := createBoard(width, height)
	strategy := board.placeMines(numMines, rng)
	board.fillNumbers()

	Log.WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"mines":     numMines,
		"placement": strategy,
	}).Debug("board created")

	return board, nil
}

// NewBoardWithMines builds a board with mines at exactly the given positions.
func NewBoardWithMines(width, height int, mines []Position) (*Board, error) {
	if err := validateDimensions(width, height, len(mines)); err != nil {
		return nil, err
	}

	board := createBoard(width, height)
	for _, pos := range mines {
		if !board.inBounds(pos.X, pos.Y) {
			return nil, errors.Wrapf(ErrInvalidLayout, "mine %v outside %dx%d board", pos, width, height)
		}
		if !board.setMine(pos) {
			return nil, errors.Wrapf(ErrInvalidLayout, "duplicate mine at %v", pos)
		}
	}
	board.fillNumbers()

	return board, nil
}

func createBoard(width, height int) *Board {
	board := &Board{
		state:          Ongoing,
		width:          width,
		height:         height,
		cells:          make([][]Cell, height),
		remainingCells: make(collections.Set[Position], width*height),
	}

	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		board.cells[y] = row

		for x := 0; x < width; x++ {
			row[x] = Cell{
				Position: Position{x, y},
				Kind:     EmptyCell,
			}
			board.remainingCells.Add(row[x].Position)
		}
	}

	return board
}

// placeMines puts numMines mines on the board and names the strategy used.
// Sparse boards use rejection sampling; dense ones shuffle every cell index,
// so placement never degenerates into endless retries.
func (board *Board) placeMines(numMines int, rng *rand.Rand) string {
	if float64(numMines) > denseBoardThreshold*float64(board.NumCells()) {
		cellIndexes := make([]int, board.NumCells())
		for i := range cellIndexes {
			cellIndexes[i] = i
		}
		rng.Shuffle(len(cellIndexes), func(i, j int) {
			cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
		})
		for _, cellIdx := range cellIndexes[:numMines] {
			board.setMine(Position{cellIdx % board.width, cellIdx / board.width})
		}
		return "shuffle"
	}

	for board.numMines < numMines {
		board.setMine(Position{rng.Intn(board.width), rng.Intn(board.height)})
	}
	return "rejection"
}

// setMine turns the cell at pos into a mine, reporting false if it already was one.
func (board *Board) setMine(pos Position) bool {
	cell := &board.cells[pos.Y][pos.X]
	if cell.IsMine() {
		return false
	}

	cell.Kind = MineCell
	cell.NumMines = 0
	board.numMines++
	board.remainingCells.Remove(pos)
	return true
}

func (board *Board) fillNumbers() {
	for y := range board.cells {
		for x := range board.cells[y] {
			cell := &board.cells[y][x]
			if cell.IsMine() {
				continue
			}

			cell.NumMines = 0
			for _, neighbor := range board.neighborsOf(cell.Position, neighborOffsets) {
				if neighbor.IsMine() {
					cell.NumMines++
				}
			}

			if cell.NumMines > 0 {
				cell.Kind = NumberCell
			} else {
				cell.Kind = EmptyCell
			}
		}
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// MinesRemaining is the mine counter shown to the player: mines minus flags.
// It goes negative when the player over-flags.
func (board *Board) MinesRemaining() int {
	return board.numMines - board.numFlags
}

// Seed returns the seed the board was generated from, if it came from a Game.
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) IsGameOver() bool {
	return board.state != Ongoing
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

func (board *Board) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

func (board *Board) cellAt(x, y int) *Cell {
	if board.inBounds(x, y) {
		return &board.cells[y][x]
	}
	return nil
}

// CellAt returns a copy of the cell at (x, y), or a cell of kind InvalidCell
// when the coordinates fall outside the board.
func (board *Board) CellAt(x, y int) Cell {
	if cell := board.cellAt(x, y); cell != nil {
		return *cell
	}
	return invalidCellAt(x, y)
}

// StateAt returns the tile to draw for (x, y); ok is false outside the board.
func (board *Board) StateAt(x, y int) (state CellState, ok bool) {
	cell := board.cellAt(x, y)
	if cell == nil {
		return Unrevealed, false
	}
	return cell.State(board.state == Lost), true
}

// Cells returns a copy of every cell, row by row.
func (board *Board) Cells() []Cell {
	cells := make([]Cell, 0, board.NumCells())
	for _, row := range board.cells {
		cells = append(cells, row...)
	}
	return cells
}

// Neighbors returns copies of the up to 8 cells surrounding (x, y).
func (board *Board) Neighbors(x, y int) []Cell {
	if !board.inBounds(x, y) {
		return nil
	}

	neighbors := board.neighborsOf(Position{x, y}, neighborOffsets)
	cells := make([]Cell, len(neighbors))
	for i, neighbor := range neighbors {
		cells[i] = *neighbor
	}
	return cells
}

func (board *Board) neighborsOf(pos Position, offsets []Position) []*Cell {
	neighbors := make([]*Cell, 0, len(offsets))
	for _, offset := range offsets {
		if cell := board.cellAt(pos.X+offset.X, pos.Y+offset.Y); cell != nil {
			neighbors = append(neighbors, cell)
		}
	}
	return neighbors
}

// Reveal opens the cell at (x, y). Out-of-bounds, revealed and flagged cells,
// as well as any cell of a finished game, are left alone.
func (board *Board) Reveal(x, y int) RevealOutcome {
	cell := board.cellAt(x, y)
	if cell == nil || !board.canPlay() || cell.Revealed || cell.Flagged {
		return RevealNoOp
	}

	switch cell.Kind {
	case MineCell:
		board.explode(cell)
		return RevealExploded
	case EmptyCell:
		board.cascadeEmpty(cell)
	default:
		board.reveal(cell)
	}

	if board.CheckWin() {
		return RevealWon
	}
	return RevealContinued
}

// Flag toggles the flag on a hidden cell and returns the new flag state. ok is
// false when nothing changed: out of bounds, already revealed, or game over.
func (board *Board) Flag(x, y int) (flagged bool, ok bool) {
	cell := board.cellAt(x, y)
	if cell == nil {
		return false, false
	}
	if !board.canPlay() || cell.Revealed {
		return cell.Flagged, false
	}

	board.setFlagged(cell, !cell.Flagged)
	return cell.Flagged, true
}

// Chord reveals every hidden, unflagged neighbor of a revealed number whose
// flagged neighbors already account for all of its mines.
func (board *Board) Chord(x, y int) RevealOutcome {
	cell := board.cellAt(x, y)
	if cell == nil || !board.canPlay() || !cell.Revealed || cell.Kind != NumberCell {
		return RevealNoOp
	}

	neighbors := board.neighborsOf(cell.Position, neighborOffsets)

	numFlaggedNeighbors := 0
	for _, neighbor := range neighbors {
		if neighbor.Flagged {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != cell.NumMines {
		return RevealNoOp
	}

	outcome := RevealNoOp
	for _, neighbor := range neighbors {
		switch board.Reveal(neighbor.X, neighbor.Y) {
		case RevealExploded:
			return RevealExploded
		case RevealWon:
			return RevealWon
		case RevealContinued:
			outcome = RevealContinued
		}
	}
	return outcome
}

// CheckWin reports whether every safe cell has been revealed. The first time
// it does, the game ends and every mine gets flagged.
func (board *Board) CheckWin() bool {
	switch board.state {
	case Won:
		return true
	case Lost:
		return false
	}

	if board.remainingCells.Len() > 0 {
		return false
	}

	board.win()
	return true
}

func (board *Board) reveal(cell *Cell) {
	if cell.Flagged {
		board.setFlagged(cell, false)
	}
	cell.Revealed = true
	if !cell.IsMine() {
		board.remainingCells.Remove(cell.Position)
	}
}

func (board *Board) setFlagged(cell *Cell, isFlagged bool) {
	if cell.Flagged == isFlagged {
		return
	}
	cell.Flagged = isFlagged

	if isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
}

func (board *Board) win() {
	board.state = Won

	for y := range board.cells {
		for x := range board.cells[y] {
			if cell := &board.cells[y][x]; cell.IsMine() {
				board.setFlagged(cell, true)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
	}).Info("board cleared")
}

// explode ends the game on the mine that was hit. Every unflagged mine is
// exposed; flagged mines stay hidden so correct guesses are not spoiled.
func (board *Board) explode(mine *Cell) {
	board.state = Lost

	mine.Revealed = true
	mine.Exploded = true

	for y := range board.cells {
		for x := range board.cells[y] {
			if cell := &board.cells[y][x]; cell.IsMine() && !cell.Flagged {
				cell.Revealed = true
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"cell":      mine.Position.String(),
		"remaining": board.remainingCells.Len(),
	}).Info("mine exploded")
}
