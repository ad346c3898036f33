package tictactoe

import "game-hub/internal/core"

func init() {
	core.Register("tictactoe", core.Entry{
		Title:       "Tic Tac Toe",
		Description: "Classic strategy game. Challenge your friend or AI!",
		Order:       1,
	})
}
