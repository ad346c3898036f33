package tictactoe

import "game-hub/internal/core"

// Strategy picks the computer's move. It returns -1 when the board is full.
type Strategy func(Board) int

// RandomStrategy picks uniformly among the empty cells.
func RandomStrategy(rng *core.RNG) Strategy {
	return func(b Board) int {
		free := b.EmptyCells()
		if len(free) == 0 {
			return -1
		}
		return free[rng.IntN(len(free))]
	}
}
