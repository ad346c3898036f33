package hub

import (
	"game-hub/internal/snake"
	"game-hub/internal/sound"
	"game-hub/internal/tictactoe"
)

// SnakeCue maps a snake driver event to its sound.
func SnakeCue(k snake.EventKind) (sound.Cue, bool) {
	switch k {
	case snake.EventStarted:
		return sound.Start, true
	case snake.EventAte:
		return sound.Eat, true
	case snake.EventGameOver:
		return sound.GameOver, true
	case snake.EventCleared:
		return sound.Win, true
	}
	return 0, false
}

// TableCue maps a tic-tac-toe table event to its sound.
func TableCue(k tictactoe.EventKind) (sound.Cue, bool) {
	switch k {
	case tictactoe.Placed:
		return sound.Click, true
	case tictactoe.ComputerPlaced:
		return sound.ComputerClick, true
	case tictactoe.Won:
		return sound.Win, true
	case tictactoe.Drawn:
		return sound.Draw, true
	}
	return 0, false
}

// SnakeListener returns a driver listener that plays event sounds on p.
func SnakeListener(p sound.Player) func(snake.Event) {
	return func(e snake.Event) {
		if c, ok := SnakeCue(e.Kind); ok {
			p.Play(c)
		}
	}
}

// PlayTable plays the sounds for a batch of table events. Only the last
// result cue is played when a move also ends the match.
func PlayTable(p sound.Player, events []tictactoe.Event) {
	for i, e := range events {
		if (e.Kind == tictactoe.Placed || e.Kind == tictactoe.ComputerPlaced) && i+1 < len(events) {
			continue
		}
		if c, ok := TableCue(e.Kind); ok {
			p.Play(c)
		}
	}
}
