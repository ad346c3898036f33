package hub

import (
	"slices"
	"testing"

	"game-hub/internal/snake"
	"game-hub/internal/sound"
	"game-hub/internal/tictactoe"
)

type recorder struct{ cues []sound.Cue }

func (r *recorder) Play(c sound.Cue) { r.cues = append(r.cues, c) }

func TestPlayTable(t *testing.T) {
	cases := []struct {
		name   string
		events []tictactoe.Event
		want   []sound.Cue
	}{
		{"move", []tictactoe.Event{{Kind: tictactoe.Placed}}, []sound.Cue{sound.Click}},
		{"computer", []tictactoe.Event{{Kind: tictactoe.ComputerPlaced}}, []sound.Cue{sound.ComputerClick}},
		{"winning move", []tictactoe.Event{{Kind: tictactoe.Placed}, {Kind: tictactoe.Won}}, []sound.Cue{sound.Win}},
		{"last move draws", []tictactoe.Event{{Kind: tictactoe.Placed}, {Kind: tictactoe.Drawn}}, []sound.Cue{sound.Draw}},
		{"nothing", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			PlayTable(&r, tc.events)
			if !slices.Equal(r.cues, tc.want) {
				t.Fatalf("cues %v, want %v", r.cues, tc.want)
			}
		})
	}
}

func TestSnakeListener(t *testing.T) {
	var r recorder
	listen := SnakeListener(&r)
	for _, k := range []snake.EventKind{snake.EventStarted, snake.EventAte, snake.EventStopped, snake.EventGameOver, snake.EventCleared} {
		listen(snake.Event{Kind: k})
	}
	want := []sound.Cue{sound.Start, sound.Eat, sound.GameOver, sound.Win}
	if !slices.Equal(r.cues, want) {
		t.Fatalf("cues %v, want %v", r.cues, want)
	}
}
