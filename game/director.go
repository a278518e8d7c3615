package game

// Director plays a board through its public surface.
type Director interface {
	/**
	 * Initialize the director for a new board
	 */
	Init(*Board)

	/**
	 * Perform a single step of actions, reporting whether anything was done
	 */
	Act() bool
}

// Play lets director act on board until the game ends, the director gives
// up, or maxSteps steps have run (maxSteps <= 0 means no limit).
func Play(board *Board, director Director, maxSteps int) BoardState {
	director.Init(board)

	for step := 0; maxSteps <= 0 || step < maxSteps; step++ {
		if board.IsGameOver() || !director.Act() {
			break
		}
	}

	return board.State()
}
