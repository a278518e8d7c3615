package random

import (
	"math/rand"

	"github.com/they4kman/minefield/game"
)

// Director reveals hidden, unflagged cells in a random order.
type Director struct {
	rand  *rand.Rand
	board *game.Board

	order []game.Position
	next  int
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.next = 0

	director.order = director.order[:0]
	for _, cell := range board.Cells() {
		director.order = append(director.order, cell.Position)
	}

	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() bool {
	for ; director.next < len(director.order); director.next++ {
		pos := director.order[director.next]
		cell := director.board.CellAt(pos.X, pos.Y)
		if cell.Revealed || cell.Flagged {
			continue
		}

		director.next++
		return director.board.Reveal(pos.X, pos.Y) != game.RevealNoOp
	}
	return false
}
