package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// Director plays by reading the numbers on the board. Each step it tries, in
// order: moves the numbers prove safe, the cell least likely to hold a mine,
// and finally a random cell.
type Director struct {
	rand   *rand.Rand
	board  *game.Board
	random *random.Director
}

// Observation states that exactly numMines of cells are mines.
type Observation struct {
	origin   *game.Position
	numMines int
	cells    collections.Set[game.Position]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, pos := range sortedPositions(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(pos.String())
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(observation.cells.Len())
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.random = random.New(director.rand)
	director.random.Init(board)
}

func (director *Director) Act() bool {
	observations := director.observe()

	if director.actDeliberate(observations) {
		return true
	}
	if director.actLowestProbability(observations) {
		return true
	}
	return director.random.Act()
}

// observe collects one observation per revealed safe cell that still borders
// hidden cells, then adds those implied by one observation containing another.
func (director *Director) observe() []*Observation {
	var observations []*Observation
	for _, cell := range director.board.Cells() {
		if cell.Revealed && !cell.IsMine() {
			observations = addObservation(observations, director.cellObservation(cell))
		}
	}

	return simplifyObservations(observations)
}

func (director *Director) cellObservation(cell game.Cell) *Observation {
	origin := cell.Position
	observation := &Observation{
		origin:   &origin,
		numMines: cell.NumMines,
		cells:    make(collections.Set[game.Position]),
	}

	for _, neighbor := range director.board.Neighbors(cell.X, cell.Y) {
		if neighbor.Revealed {
			continue
		}
		if neighbor.Flagged {
			observation.numMines--
		} else {
			observation.cells.Add(neighbor.Position)
		}
	}

	return observation
}

func simplifyObservations(observations []*Observation) []*Observation {
	derived := observations
	for _, observation := range observations {
		for _, intersectingObs := range observations {
			if intersectingObs == observation || intersectingObs.cells.Len() <= observation.cells.Len() {
				continue
			}

			if _, isSubset := observation.cells.IntersectionEx(intersectingObs.cells); isSubset {
				derived = addObservation(derived, &Observation{
					numMines: intersectingObs.numMines - observation.numMines,
					cells:    intersectingObs.cells.Difference(observation.cells),
				})
			}
		}
	}
	return derived
}

func addObservation(observations []*Observation, observation *Observation) []*Observation {
	// Don't add vacuous or contradictory observations
	if observation.cells.Len() == 0 || observation.numMines < 0 || observation.numMines > observation.cells.Len() {
		return observations
	}

	// Don't add duplicates
	for _, otherObs := range observations {
		if otherObs.cells.Equal(observation.cells) {
			return observations
		}
	}

	return append(observations, observation)
}

func (director *Director) actDeliberate(observations []*Observation) bool {
	acted := false

	for _, observation := range observations {
		switch observation.numMines {
		case observation.cells.Len():
			for _, pos := range sortedPositions(observation.cells) {
				if cell := director.board.CellAt(pos.X, pos.Y); cell.IsHidden() && !cell.Flagged {
					_, ok := director.board.Flag(pos.X, pos.Y)
					acted = acted || ok
				}
			}
		case 0:
			for _, pos := range sortedPositions(observation.cells) {
				if director.board.Reveal(pos.X, pos.Y) != game.RevealNoOp {
					acted = true
				}
			}
		}

		if director.board.IsGameOver() {
			break
		}
	}

	return acted
}

func (director *Director) actLowestProbability(observations []*Observation) bool {
	lowestProbability := float32(math.Inf(1))
	cellProbabilities := make(map[game.Position]float32)

	for _, observation := range observations {
		probability := observation.MineProbability()
		for pos := range observation.cells {
			if pastProbability, ok := cellProbabilities[pos]; !ok || probability < pastProbability {
				cellProbabilities[pos] = probability
			}
			if probability < lowestProbability {
				lowestProbability = probability
			}
		}
	}

	var lowestProbabilityCells []game.Position
	for pos, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, pos)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return false
	}

	sortPositions(lowestProbabilityCells)
	director.rand.Shuffle(len(lowestProbabilityCells), func(i, j int) {
		lowestProbabilityCells[i], lowestProbabilityCells[j] = lowestProbabilityCells[j], lowestProbabilityCells[i]
	})

	pos := lowestProbabilityCells[0]
	return director.board.Reveal(pos.X, pos.Y) != game.RevealNoOp
}

func sortedPositions(set collections.Set[game.Position]) []game.Position {
	positions := set.Slice()
	sortPositions(positions)
	return positions
}

func sortPositions(positions []game.Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
}
