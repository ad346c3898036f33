// Package term plays snake on a character terminal through tcell.
package term

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"game-hub/internal/core"
	"game-hub/internal/snake"
)

// FrameInterval is how often the runner advances and redraws.
const FrameInterval = 16 * time.Millisecond

var (
	lightBG = tcell.NewRGBColor(167, 217, 72)
	darkBG  = tcell.NewRGBColor(142, 204, 57)

	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	bodyFG      = tcell.NewRGBColor(37, 99, 235)
	headFG      = tcell.NewRGBColor(30, 64, 175)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePop    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

const (
	headRune  = '@'
	bodyRune  = 'o'
	tailRune  = '.'
	coinRune  = '$'
	appleRune = '*'
)

// Action is what a key press asks the runner to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionRestart
	ActionPause
	ActionQuit
)

// KeyAction maps a key press to an action and, for ActionSteer, a heading.
func KeyAction(key tcell.Key, ch rune) (Action, snake.Heading) {
	switch key {
	case tcell.KeyUp:
		return ActionSteer, snake.Up
	case tcell.KeyDown:
		return ActionSteer, snake.Down
	case tcell.KeyLeft:
		return ActionSteer, snake.Left
	case tcell.KeyRight:
		return ActionSteer, snake.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, snake.NoHeading
	case tcell.KeyRune:
	default:
		return ActionNone, snake.NoHeading
	}
	switch ch {
	case 'w', 'W', 'k':
		return ActionSteer, snake.Up
	case 's', 'S', 'j':
		return ActionSteer, snake.Down
	case 'a', 'A', 'h':
		return ActionSteer, snake.Left
	case 'd', 'D', 'l':
		return ActionSteer, snake.Right
	case 'r', 'R':
		return ActionRestart, snake.NoHeading
	case 'p', 'P', ' ':
		return ActionPause, snake.NoHeading
	case 'q', 'Q':
		return ActionQuit, snake.NoHeading
	}
	return ActionNone, snake.NoHeading
}

// Runner drives a snake.Driver on a tcell screen. Each board cell is two
// columns wide so the grid looks square; the glyph sits in the left one.
type Runner struct {
	screen tcell.Screen
	drv    *snake.Driver
	log    *slog.Logger
}

// NewRunner returns a runner drawing drv on screen. A nil logger discards
// output.
func NewRunner(screen tcell.Screen, drv *snake.Driver, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{screen: screen, drv: drv, log: log}
}

// Handle applies one key press. It reports false when the runner should
// stop.
func (r *Runner) Handle(key tcell.Key, ch rune) bool {
	action, h := KeyAction(key, ch)
	switch action {
	case ActionSteer:
		r.drv.Steer(h)
	case ActionRestart:
		r.drv.Restart()
	case ActionPause:
		switch r.drv.Phase() {
		case snake.Running:
			r.drv.Stop()
		case snake.Stopped:
			r.drv.Start()
		}
	case ActionQuit:
		return false
	}
	return true
}

// Run starts the driver and loops until ctx is cancelled or the player
// quits. The driver is stopped on every exit. The screen must already be
// initialised; Run does not call Fini.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan *tcell.EventKey, 8)
	go r.poll(ctx, keys)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	r.drv.Start()
	defer r.drv.Stop()
	r.log.Info("terminal snake running", "grid", r.drv.Session().Grid().N)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-keys:
			if !ok || !r.Handle(ev.Key(), ev.Rune()) {
				return nil
			}
		case now := <-ticker.C:
			r.drv.Frame(now)
			r.Draw(now)
		}
	}
}

func (r *Runner) poll(ctx context.Context, out chan<- *tcell.EventKey) {
	defer close(out)
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Draw renders the board, the food, live score-pops, the status line and,
// once the game has ended, a banner.
func (r *Runner) Draw(now time.Time) {
	s := r.drv.Session()
	grid := s.Grid()
	n := grid.N
	r.screen.Clear()

	size := grid.Size()
	drawBox(r.screen, 0, 0, 2*size.W+2, size.H+2)
	cells := s.Cells()
	put := func(c core.Cell, ch rune, fg tcell.Color) {
		bg := lightBG
		if cells[grid.Index(c)] == snake.CellDark {
			bg = darkBG
		}
		st := tcell.StyleDefault.Background(bg).Foreground(fg)
		r.screen.SetContent(1+2*c.Col, 1+c.Row, ch, nil, st)
		r.screen.SetContent(2+2*c.Col, 1+c.Row, ' ', nil, st)
	}
	for i, v := range cells {
		c := grid.CellAt(i)
		switch v {
		case snake.CellHead:
			put(c, headRune, headFG)
		case snake.CellBody:
			put(c, bodyRune, bodyFG)
		case snake.CellTail:
			put(c, tailRune, bodyFG)
		default:
			put(c, ' ', tcell.ColorDefault)
		}
	}
	switch f := s.Food(); f.Kind {
	case snake.Coin:
		put(f.Cell, coinRune, tcell.ColorGold)
	case snake.Apple:
		put(f.Cell, appleRune, tcell.ColorRed)
	}
	for _, p := range r.drv.FX().Pops(now) {
		col, row := int(p.X)/grid.CellSize, int(p.Y)/grid.CellSize-1
		if row < 0 {
			row = 0
		}
		drawText(r.screen, 1+2*col, 1+row, stylePop, fmt.Sprintf("+%d", p.Points))
	}

	status := fmt.Sprintf("Score: %d  High: %d  [%s]", s.Score(), s.HighScore(), r.drv.Phase())
	drawText(r.screen, 0, n+2, styleText, status)
	drawText(r.screen, 0, n+3, styleText, "arrows/wasd steer  r restart  p pause  q quit")

	if s.Over() {
		msg := " Game Over! "
		if s.Cleared() {
			msg = " Board cleared! "
		}
		drawText(r.screen, n+1-len(msg)/2, n/2, styleBanner, msg)
		hint := fmt.Sprintf(" Your score: %d  press r ", s.Score())
		drawText(r.screen, n+1-len(hint)/2, n/2+1, styleBanner, hint)
	}
	r.screen.Show()
}

func drawBox(s tcell.Screen, x, y, w, h int) {
	for i := x + 1; i < x+w-1; i++ {
		s.SetContent(i, y, '─', nil, styleBorder)
		s.SetContent(i, y+h-1, '─', nil, styleBorder)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetContent(x, j, '│', nil, styleBorder)
		s.SetContent(x+w-1, j, '│', nil, styleBorder)
	}
	s.SetContent(x, y, '┌', nil, styleBorder)
	s.SetContent(x+w-1, y, '┐', nil, styleBorder)
	s.SetContent(x, y+h-1, '└', nil, styleBorder)
	s.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

func drawText(s tcell.Screen, x, y int, st tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, st)
		x++
	}
}
