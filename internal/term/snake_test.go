package term

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"game-hub/internal/snake"
)

// recordScreen is a minimal tcell.Screen that remembers drawn runes.
type recordScreen struct {
	tcell.Screen
	cells map[[2]int]rune
	shown int
}

func newRecordScreen() *recordScreen {
	return &recordScreen{cells: map[[2]int]rune{}}
}

func (m *recordScreen) Clear() { clear(m.cells) }
func (m *recordScreen) Show()  { m.shown++ }
func (m *recordScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *recordScreen) row(y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, ok := m.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		key     tcell.Key
		ch      rune
		action  Action
		heading snake.Heading
	}{
		{tcell.KeyUp, 0, ActionSteer, snake.Up},
		{tcell.KeyLeft, 0, ActionSteer, snake.Left},
		{tcell.KeyRune, 'd', ActionSteer, snake.Right},
		{tcell.KeyRune, 'S', ActionSteer, snake.Down},
		{tcell.KeyRune, 'r', ActionRestart, snake.NoHeading},
		{tcell.KeyRune, ' ', ActionPause, snake.NoHeading},
		{tcell.KeyRune, 'q', ActionQuit, snake.NoHeading},
		{tcell.KeyEscape, 0, ActionQuit, snake.NoHeading},
		{tcell.KeyRune, 'x', ActionNone, snake.NoHeading},
		{tcell.KeyTab, 0, ActionNone, snake.NoHeading},
	}
	for _, tc := range cases {
		a, h := KeyAction(tc.key, tc.ch)
		if a != tc.action || h != tc.heading {
			t.Errorf("KeyAction(%v, %q) = %v, %v; want %v, %v", tc.key, tc.ch, a, h, tc.action, tc.heading)
		}
	}
}

func TestHandle(t *testing.T) {
	drv := snake.NewDriver(snake.DefaultConfig())
	r := NewRunner(newRecordScreen(), drv, nil)
	drv.Start()

	if !r.Handle(tcell.KeyRune, 'p') || drv.Phase() != snake.Stopped {
		t.Fatalf("p should pause, phase %v", drv.Phase())
	}
	r.Handle(tcell.KeyRune, 'p')
	if drv.Phase() != snake.Running {
		t.Fatalf("p should resume, phase %v", drv.Phase())
	}
	r.Handle(tcell.KeyDown, 0)
	if drv.Heading() != snake.Down {
		t.Fatalf("heading %v", drv.Heading())
	}
	if r.Handle(tcell.KeyRune, 'q') {
		t.Fatal("q should stop the runner")
	}
}

func TestDrawBoard(t *testing.T) {
	cfg := snake.DefaultConfig()
	drv := snake.NewDriver(cfg)
	scr := newRecordScreen()
	r := NewRunner(scr, drv, nil)
	r.Draw(time.Unix(0, 0))

	n := cfg.GridSize
	if scr.cells[[2]int{0, 0}] != '┌' || scr.cells[[2]int{2*n + 1, n + 1}] != '┘' {
		t.Fatal("board border missing")
	}
	head := drv.Session().Body().Head()
	if got := scr.cells[[2]int{1 + 2*head.Col, 1 + head.Row}]; got != headRune {
		t.Fatalf("head cell drew %q", got)
	}
	food := drv.Session().Food()
	want := coinRune
	if food.Kind == snake.Apple {
		want = appleRune
	}
	if got := scr.cells[[2]int{1 + 2*food.Cell.Col, 1 + food.Cell.Row}]; got != want {
		t.Fatalf("food cell drew %q, want %q", got, want)
	}
	if !strings.HasPrefix(scr.row(n+2, 40), "Score: 0  High: 0") {
		t.Fatalf("status line %q", scr.row(n+2, 40))
	}
	if scr.shown != 1 {
		t.Fatalf("Show called %d times", scr.shown)
	}
}

func TestDrawGameOverBanner(t *testing.T) {
	cfg := snake.DefaultConfig()
	drv := snake.NewDriver(cfg)
	scr := newRecordScreen()
	r := NewRunner(scr, drv, nil)

	drv.Start()
	now := time.Unix(0, 0)
	for i := 0; i < 100 && drv.Phase() != snake.Over; i++ {
		drv.Frame(now)
		now = now.Add(cfg.TickInterval)
	}
	if drv.Phase() != snake.Over {
		t.Fatal("heading right into the wall should end the game")
	}
	r.Draw(now)
	if !strings.Contains(scr.row(cfg.GridSize/2, 2*cfg.GridSize+2), "Game Over!") {
		t.Fatalf("banner row %q", scr.row(cfg.GridSize/2, 2*cfg.GridSize+2))
	}
}

func TestDrawScorePop(t *testing.T) {
	cfg := snake.DefaultConfig()
	drv := snake.NewDriver(cfg)
	scr := newRecordScreen()
	r := NewRunner(scr, drv, nil)

	drv.Start()
	head := drv.Session().Body().Head()
	drv.Session().PlaceFood(snake.Food{Cell: head.Add(1, 0), Kind: snake.Apple})
	t0 := time.Unix(0, 0)
	drv.Frame(t0)
	now := t0.Add(cfg.TickInterval)
	if res, _ := drv.Frame(now); res.Outcome != snake.Ate {
		t.Fatalf("expected to eat, got %v", res.Outcome)
	}
	r.Draw(now)
	x, y := 1+2*(head.Col+1), head.Row
	if scr.cells[[2]int{x, y}] != '+' || scr.cells[[2]int{x + 1, y}] != '2' {
		t.Fatalf("pop row %q", scr.row(y, 2*cfg.GridSize+2))
	}

	scr = newRecordScreen()
	r = NewRunner(scr, drv, nil)
	r.Draw(now.Add(snake.PopLifetime))
	if scr.cells[[2]int{x, y}] == '+' {
		t.Fatal("pop should expire after its lifetime")
	}
}

func TestRunStopsWithContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	var events []snake.EventKind
	drv := snake.NewDriver(snake.DefaultConfig(), snake.WithListener(func(e snake.Event) {
		events = append(events, e.Kind)
	}))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := NewRunner(screen, drv, nil).Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v", err)
	}
	if drv.Phase() != snake.Stopped {
		t.Fatalf("cancelled run must stop the driver, phase %v", drv.Phase())
	}
	want := []snake.EventKind{snake.EventStarted, snake.EventStopped}
	if !slices.Equal(events, want) {
		t.Fatalf("events %v, want %v", events, want)
	}
}
