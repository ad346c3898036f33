package snake

import "game-hub/internal/core"

func init() {
	core.Register("snake", core.Entry{
		Title:       "Snake Game",
		Description: "Eat, grow, and avoid walls in this arcade classic!",
		Order:       2,
	})
}
