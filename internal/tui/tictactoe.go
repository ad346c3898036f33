// Package tui plays tic-tac-toe in a terminal through bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"game-hub/internal/hub"
	"game-hub/internal/sound"
	"game-hub/internal/tictactoe"
)

// TickInterval is how often the model polls for the computer's move.
const TickInterval = 100 * time.Millisecond

// TickMsg drives the computer's delayed reply.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the bubbletea model for one table.
type Model struct {
	table  *tictactoe.Table
	sound  sound.Player
	now    func() time.Time
	cursor int
	notice string
}

// NewModel wraps table. A nil player is silent.
func NewModel(table *tictactoe.Table, player sound.Player) Model {
	if player == nil {
		player = sound.Nop{}
	}
	return Model{table: table, sound: player, now: time.Now, cursor: 4}
}

// Table returns the underlying table.
func (m Model) Table() *tictactoe.Table { return m.table }

// Cursor returns the highlighted cell.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg.String())
	case TickMsg:
		hub.PlayTable(m.sound, m.table.Update(time.Time(msg)))
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) key(k string) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "enter", " ":
		m.click(m.cursor)
	case "r":
		m.table.Reset()
		m.sound.Play(sound.Start)
	case "m":
		if m.table.Mode() == tictactoe.Single {
			m.table.SetMode(tictactoe.Multi)
		} else {
			m.table.SetMode(tictactoe.Single)
		}
		m.sound.Play(sound.Click)
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			m.cursor = int(k[0] - '1')
			m.click(m.cursor)
		}
	}
	return m, nil
}

func (m *Model) click(idx int) {
	if m.table.Game().Over {
		m.table.Reset()
		m.sound.Play(sound.Start)
		return
	}
	events, err := m.table.Click(idx, m.now())
	if err != nil {
		m.notice = err.Error()
		return
	}
	hub.PlayTable(m.sound, events)
}

func (m Model) View() string {
	g := m.table.Game()
	var b strings.Builder
	fmt.Fprintf(&b, "Tic Tac Toe  (%s)\n\n", m.table.Mode())
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			mark := " "
			if g.Board[idx] != tictactoe.Empty {
				mark = g.Board[idx].String()
			}
			switch {
			case idx == m.cursor && !g.Over:
				fmt.Fprintf(&b, "[%s]", mark)
			case g.InLine(idx):
				fmt.Fprintf(&b, "*%s*", mark)
			default:
				fmt.Fprintf(&b, " %s ", mark)
			}
			if col < 2 {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}
	b.WriteString("\n" + m.table.Status() + "\n")
	if r := m.table.Result(); r != "" {
		b.WriteString(r + "  press enter to play again\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice + "\n")
	}
	b.WriteString("\narrows/hjkl move  enter or 1-9 play  m mode  r reset  q quit\n")
	return b.String()
}
