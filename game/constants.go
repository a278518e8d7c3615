package game

// CellState is the tile a presentation layer should draw for a cell.
type CellState int

// BoardState is the lifecycle state of a board.
type BoardState int

// RevealOutcome reports what a Reveal or Chord did to the board.
type RevealOutcome int

// CellKind is the static content of a cell, fixed when the board is built.
type CellKind int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineLosing,
}

var cellStateNames = map[CellState]string{
	Unrevealed: "unrevealed",
	Empty:      "empty",
	Flag:       "flag",
	FlagWrong:  "flag_wrong",
	Mine:       "mine",
	MineLosing: "mine_losing",
}

func (state CellState) String() string {
	if state >= Number1 && state <= Number8 {
		return "number" + string(rune('0'+int(state)))
	}
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return "unknown"
}

const (
	Ongoing BoardState = iota
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const (
	RevealNoOp RevealOutcome = iota
	RevealContinued
	RevealExploded
	RevealWon
)

func (outcome RevealOutcome) String() string {
	switch outcome {
	case RevealNoOp:
		return "noop"
	case RevealContinued:
		return "continued"
	case RevealExploded:
		return "exploded"
	case RevealWon:
		return "won"
	default:
		return "unknown"
	}
}

// Ended reports whether the outcome finished the game.
func (outcome RevealOutcome) Ended() bool {
	return outcome == RevealExploded || outcome == RevealWon
}

const (
	EmptyCell CellKind = iota
	NumberCell
	MineCell
	// InvalidCell is only handed out for out-of-bounds queries; the grid never
	// stores it.
	InvalidCell
)

func (kind CellKind) String() string {
	switch kind {
	case EmptyCell:
		return "empty"
	case NumberCell:
		return "number"
	case MineCell:
		return "mine"
	default:
		return "invalid"
	}
}

const (
	// Above this mine density, placement switches from rejection sampling to a
	// shuffle of every cell index.
	denseBoardThreshold = 0.6
)
