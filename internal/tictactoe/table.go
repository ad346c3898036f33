package tictactoe

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"game-hub/internal/core"
)

// ComputerDelay is how long the computer waits before answering.
const ComputerDelay = time.Second

// Mode selects who plays O.
type Mode uint8

const (
	// Single pits X against the computer.
	Single Mode = iota
	// Multi is two players on one device.
	Multi
)

func (m Mode) String() string {
	if m == Multi {
		return "multi"
	}
	return "single"
}

// EventKind classifies what a table action did.
type EventKind uint8

const (
	Placed EventKind = iota + 1
	ComputerPlaced
	Won
	Drawn
)

// Event describes one observable change, for sound and logging.
type Event struct {
	Kind   EventKind
	Index  int
	Mark   Mark
	Winner Mark
}

// Table runs a match in either mode, scheduling the computer's reply.
type Table struct {
	ID string

	game     Game
	mode     Mode
	strategy Strategy

	pending bool
	due     time.Time

	log *slog.Logger
}

// NewTable returns a table with a fresh game. A nil logger discards output.
func NewTable(mode Mode, strategy Strategy, log *slog.Logger) *Table {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Table{mode: mode, strategy: strategy, log: log}
	t.Reset()
	return t
}

// Game returns a copy of the current game.
func (t *Table) Game() Game { return t.game }

// Mode reports the current mode.
func (t *Table) Mode() Mode { return t.mode }

// ComputerPending reports whether a computer move is scheduled.
func (t *Table) ComputerPending() bool { return t.pending }

// Reset starts a new match in the current mode.
func (t *Table) Reset() {
	t.game = New()
	t.pending = false
	t.due = time.Time{}
	t.ID = uuid.NewString()
	t.log.Debug("tictactoe reset", "table", t.ID, "mode", t.mode.String())
}

// SetMode switches modes and starts a new match.
func (t *Table) SetMode(m Mode) {
	t.mode = m
	t.Reset()
}

// Click plays the human move at idx. In single mode clicks on the
// computer's turn are refused.
func (t *Table) Click(idx int, now time.Time) ([]Event, error) {
	if t.mode == Single && t.game.Turn == O && !t.game.Over {
		return nil, ErrComputerTurn
	}
	mark := t.game.Turn
	if err := t.game.Play(idx); err != nil {
		return nil, err
	}
	events := []Event{{Kind: Placed, Index: idx, Mark: mark}}
	events = t.settle(events)
	if t.mode == Single && !t.game.Over && t.game.Turn == O {
		t.pending = true
		t.due = now.Add(ComputerDelay)
	}
	return events, nil
}

// Update plays the scheduled computer move once it is due.
func (t *Table) Update(now time.Time) []Event {
	if !t.pending || now.Before(t.due) {
		return nil
	}
	t.pending = false
	if t.strategy == nil || t.game.Over {
		return nil
	}
	idx := t.strategy(t.game.Board)
	if idx < 0 {
		return nil
	}
	if err := t.game.Play(idx); err != nil {
		t.log.Warn("tictactoe computer move rejected", "table", t.ID, "index", idx, "err", err)
		return nil
	}
	return t.settle([]Event{{Kind: ComputerPlaced, Index: idx, Mark: O}})
}

func (t *Table) settle(events []Event) []Event {
	if !t.game.Over {
		return events
	}
	if t.game.Draw() {
		t.log.Info("tictactoe draw", "table", t.ID, "mode", t.mode.String())
		return append(events, Event{Kind: Drawn})
	}
	t.log.Info("tictactoe win", "table", t.ID, "mode", t.mode.String(), "winner", t.game.Winner.String())
	return append(events, Event{Kind: Won, Winner: t.game.Winner})
}

// Status is the one-line turn or result banner.
func (t *Table) Status() string {
	g := t.game
	switch {
	case g.Draw():
		return "It's a draw!"
	case g.Over:
		return g.Winner.String() + " wins!"
	case g.Turn == X:
		return "Player X's turn"
	case t.mode == Single:
		return "Computer's turn"
	default:
		return "Player O's turn"
	}
}

// Result is the headline shown over a finished board.
func (t *Table) Result() string {
	g := t.game
	switch {
	case !g.Over:
		return ""
	case g.Draw():
		return "It's a Draw!"
	case t.mode == Single && g.Winner == X:
		return "You Win!"
	case t.mode == Single:
		return "You Lose!"
	default:
		return g.Winner.String() + " Wins!"
	}
}

// Parameters returns the HUD snapshot of the match.
func (t *Table) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Match",
		Params: []core.Parameter{
			core.TextParam("mode", "Mode", t.mode.String()),
			core.TextParam("status", "Status", t.Status()),
			core.IntParam("moves", "Moves", t.game.Moves),
		},
	}}}
}
