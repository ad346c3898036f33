package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"game-hub/internal/sound"
	"game-hub/internal/tictactoe"
)

type recorder struct{ cues []sound.Cue }

func (r *recorder) Play(c sound.Cue) { r.cues = append(r.cues, c) }

func firstEmpty(b tictactoe.Board) int {
	for i, m := range b {
		if m == tictactoe.Empty {
			return i
		}
	}
	return -1
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newModel(mode tictactoe.Mode) (Model, *recorder, time.Time) {
	rec := &recorder{}
	m := NewModel(tictactoe.NewTable(mode, firstEmpty, nil), rec)
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }
	return m, rec, t0
}

func TestCursorMovesWithinBoard(t *testing.T) {
	m, _, _ := newModel(tictactoe.Multi)
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft},
	)
	if m.Cursor() != 0 {
		t.Fatalf("cursor %d, want 0", m.Cursor())
	}
	m = send(t, m, runes("l"), runes("j"), runes("j"), runes("j"))
	if m.Cursor() != 7 {
		t.Fatalf("cursor %d, want 7", m.Cursor())
	}
}

func TestComputerRepliesOnTick(t *testing.T) {
	m, rec, t0 := newModel(tictactoe.Single)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	g := m.Table().Game()
	if g.Board[4] != tictactoe.X || !m.Table().ComputerPending() {
		t.Fatalf("enter should play the centre, board %v", g.Board)
	}

	m = send(t, m, runes("1"))
	if !strings.Contains(m.View(), tictactoe.ErrComputerTurn.Error()) {
		t.Fatalf("refused move should be reported:\n%s", m.View())
	}

	m = send(t, m, TickMsg(t0.Add(tictactoe.ComputerDelay/2)))
	if m.Table().Game().Moves != 1 {
		t.Fatal("computer moved before its delay")
	}
	m = send(t, m, TickMsg(t0.Add(tictactoe.ComputerDelay)))
	if m.Table().Game().Board[0] != tictactoe.O {
		t.Fatalf("computer should take cell 0, board %v", m.Table().Game().Board)
	}
	want := []sound.Cue{sound.Click, sound.ComputerClick}
	if len(rec.cues) != 2 || rec.cues[0] != want[0] || rec.cues[1] != want[1] {
		t.Fatalf("cues %v, want %v", rec.cues, want)
	}
}

func TestWinShowsResultAndEnterRestarts(t *testing.T) {
	m, rec, _ := newModel(tictactoe.Multi)
	m = send(t, m, runes("1"), runes("4"), runes("2"), runes("5"), runes("3"))
	if !m.Table().Game().Over {
		t.Fatal("X should have won on the top row")
	}
	view := m.View()
	if !strings.Contains(view, "X Wins!") || !strings.Contains(view, "*X*") {
		t.Fatalf("view missing result or highlight:\n%s", view)
	}
	if rec.cues[len(rec.cues)-1] != sound.Win {
		t.Fatalf("last cue %v, want win", rec.cues[len(rec.cues)-1])
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Table().Game().Moves != 0 {
		t.Fatal("enter on a finished board starts a new match")
	}
}

func TestModeToggleAndQuit(t *testing.T) {
	m, _, _ := newModel(tictactoe.Single)
	m = send(t, m, runes("m"))
	if m.Table().Mode() != tictactoe.Multi {
		t.Fatalf("mode %v", m.Table().Mode())
	}
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}
