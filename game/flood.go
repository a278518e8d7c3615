package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/minefield/util/collections"
)

type NeighborGetter func(*Cell) []*Cell

// Visitor handles one cell of a flood and reports whether the flood should
// continue into that cell's neighbors.
type Visitor func(*Cell) bool

// flood walks outward from origin with an explicit work list, so the depth of
// the region never translates into call stack depth. Cells are marked visited
// when enqueued, so each one is handed to visit at most once.
func flood(origin *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(collections.Set[Position])
	var visitQueue deque.Deque

	enqueue := func(cell *Cell) {
		if visited.Contains(cell.Position) {
			return
		}
		visited.Add(cell.Position)
		visitQueue.PushBack(cell)
	}

	enqueue(origin)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		if !visit(cell) {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			enqueue(neighbor)
		}
	}
}

// cascadeEmpty reveals the 4-connected region of empty cells around origin,
// together with the numbered cells bordering it, and returns how many cells
// it revealed. Mines are never touched.
func (board *Board) cascadeEmpty(origin *Cell) int {
	numRevealed := 0

	flood(
		origin,
		func(cell *Cell) bool {
			if cell.Revealed || cell.IsMine() {
				return false
			}

			board.reveal(cell)
			numRevealed++
			return cell.Kind == EmptyCell
		},
		func(cell *Cell) []*Cell {
			return board.neighborsOf(cell.Position, orthogonalOffsets)
		},
	)

	return numRevealed
}
