//go:build ebiten

package app

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"time"

	"game-hub/internal/core"
	"game-hub/internal/hub"
	"game-hub/internal/render"
	"game-hub/internal/snake"
	"game-hub/internal/sound"
	"game-hub/internal/tictactoe"
	"game-hub/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 220

type screenID uint8

const (
	screenHub screenID = iota
	screenSnake
	screenTicTacToe
)

func (s screenID) String() string {
	switch s {
	case screenSnake:
		return "snake"
	case screenTicTacToe:
		return "tictactoe"
	default:
		return "hub"
	}
}

var (
	snakeAccent = color.RGBA{R: 16, G: 185, B: 129, A: 255}
	snakeBG     = color.RGBA{R: 6, G: 78, B: 59, A: 255}
	tttAccent   = color.RGBA{R: 219, G: 39, B: 119, A: 255}
	tttBG       = color.RGBA{R: 49, G: 46, B: 129, A: 255}
	bubbleTint  = color.RGBA{R: 255, G: 255, B: 255, A: 40}
)

// Game adapts the hub and its games to the ebiten.Game interface.
type Game struct {
	log   *slog.Logger
	sound sound.Player
	now   func() time.Time

	screen    screenID
	carousel  *hub.Carousel
	hubView   *ui.Carousel
	bubbles   *ui.Bubbles
	lastFrame time.Time

	snake        *snake.Driver
	snakePainter *render.GridPainter
	snakeHUD     *ui.HUD
	overlay      *ui.Overlay

	table    *tictactoe.Table
	board    *ui.Board
	tableHUD *ui.HUD

	play int
	w, h int
}

// New constructs the hub. A nil logger discards output and a nil player is
// silent.
func New(cfg *Config, log *slog.Logger, player sound.Player) *Game {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if player == nil {
		player = sound.Nop{}
	}
	drv := snake.NewDriver(cfg.SnakeConfig(), snake.WithLogger(log), snake.WithListener(hub.SnakeListener(player)))
	grid := drv.Session().Grid()
	play := grid.PixelSize()

	g := &Game{
		log:      log,
		sound:    player,
		now:      time.Now,
		carousel: hub.NewCarousel(core.Entries()),
		snake:    drv,
		play:     play,
		w:        play + panelWidth,
		h:        play,
	}
	g.hubView = ui.NewCarousel(g.w, g.h, g.carousel.Len())
	g.bubbles = ui.NewBubbles(20, float64(g.w), float64(g.h), cfg.ResolveSeed())

	g.snakePainter = render.NewGridPainter(grid.N, grid.N)
	g.overlay = ui.NewOverlay()
	g.snakeHUD = ui.NewHUD(drv, "Snake", panelWidth, g.h, snakeButtons(g.h))

	g.table = tictactoe.NewTable(tictactoe.Single, tictactoe.RandomStrategy(core.NewRNG(cfg.ResolveSeed())), log)
	g.board = ui.NewBoard(image.Rect(20, 20, play-20, play-20))
	g.tableHUD = ui.NewHUD(g.table, "Tic Tac Toe", panelWidth, g.h, tableButtons(g.h))

	if cfg.Game != "" {
		g.launch(cfg.Game)
	}
	return g
}

func snakeButtons(h int) []ui.Button {
	buttons := ui.DPad(panelWidth-60, h-60, 30, 4)
	return append(buttons,
		ui.Button{ID: "restart", Label: "Restart", Rect: image.Rect(12, h-96, 92, h-68)},
		ui.Button{ID: "back", Label: "Back", Rect: image.Rect(12, h-56, 92, h-28)},
	)
}

func tableButtons(h int) []ui.Button {
	return []ui.Button{
		{ID: "single", Label: "Single", Rect: image.Rect(12, h-170, panelWidth/2-4, h-142)},
		{ID: "multi", Label: "Multi", Rect: image.Rect(panelWidth/2+4, h-170, panelWidth-12, h-142)},
		{ID: "reset", Label: "Reset Game", Rect: image.Rect(12, h-120, panelWidth-12, h-92)},
		{ID: "back", Label: "Back", Rect: image.Rect(12, h-76, panelWidth-12, h-48)},
	}
}

// Update handles per-frame logic for the active screen.
func (g *Game) Update() error {
	now := g.now()
	if !g.lastFrame.IsZero() {
		g.bubbles.Advance(now.Sub(g.lastFrame).Seconds())
	}
	g.lastFrame = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.screen == screenHub {
			return ebiten.Termination
		}
		g.back()
		return nil
	}

	points := ui.JustPressedPoints()
	switch g.screen {
	case screenSnake:
		g.updateSnake(now, points)
	case screenTicTacToe:
		g.updateTable(now, points)
	default:
		g.updateHub(points)
	}
	return nil
}

func (g *Game) updateHub(points []image.Point) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.navigate(g.carousel.Prev)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.navigate(g.carousel.Next)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.launchCurrent()
		return
	}
	l := g.hubView.Layout
	for _, p := range points {
		switch {
		case p.In(l.Prev):
			g.navigate(g.carousel.Prev)
		case p.In(l.Next):
			g.navigate(g.carousel.Next)
		case p.In(l.Play), p.In(l.Card) && !inDots(p, l.Dots):
			g.launchCurrent()
			return
		default:
			for i, d := range l.Dots {
				if p.In(d) && g.carousel.Select(i) {
					g.sound.Play(sound.Click)
				}
			}
		}
	}
}

func inDots(p image.Point, dots []image.Rectangle) bool {
	for _, d := range dots {
		if p.In(d) {
			return true
		}
	}
	return false
}

func (g *Game) navigate(move func()) {
	move()
	g.sound.Play(sound.Click)
}

func (g *Game) launchCurrent() {
	if e, ok := g.carousel.Current(); ok {
		g.launch(e.Key)
	}
}

func (g *Game) launch(key string) {
	from := g.screen
	switch key {
	case "snake":
		g.screen = screenSnake
		g.snake.Restart()
	case "tictactoe":
		g.screen = screenTicTacToe
		g.table.Reset()
		g.sound.Play(sound.Start)
	default:
		g.log.Warn("unknown game", "game", key)
		return
	}
	g.log.Info("screen changed", "from", from.String(), "to", g.screen.String())
}

func (g *Game) back() {
	from := g.screen
	g.snake.Stop()
	g.screen = screenHub
	g.sound.Play(sound.Click)
	g.log.Info("screen changed", "from", from.String(), "to", g.screen.String())
}

var steerKeys = []struct {
	keys    []ebiten.Key
	heading snake.Heading
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, snake.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, snake.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, snake.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, snake.Right},
}

var buttonHeadings = map[string]snake.Heading{
	"up": snake.Up, "down": snake.Down, "left": snake.Left, "right": snake.Right,
}

func (g *Game) updateSnake(now time.Time, points []image.Point) {
	for _, sk := range steerKeys {
		for _, k := range sk.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.snake.Steer(sk.heading)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.snake.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		switch g.snake.Phase() {
		case snake.Running:
			g.snake.Stop()
		case snake.Stopped:
			g.snake.Start()
		}
	}

	for _, id := range g.snakeHUD.Update(g.play, points) {
		switch id {
		case "restart":
			g.snake.Restart()
		case "back":
			g.back()
			return
		default:
			if h, ok := buttonHeadings[id]; ok {
				g.snake.Steer(h)
			}
		}
	}
	if g.snake.Phase() == snake.Over {
		veil := ui.VeilRect(0, 0, g.play)
		for _, p := range points {
			if p.In(veil) {
				g.snake.Restart()
				break
			}
		}
	}
	g.snake.Frame(now)
}

var cellKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) updateTable(now time.Time, points []image.Point) {
	for idx, k := range cellKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.clickCell(idx, now)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetTable()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.table.Mode() == tictactoe.Single {
			g.setMode(tictactoe.Multi)
		} else {
			g.setMode(tictactoe.Single)
		}
	}

	for _, id := range g.tableHUD.Update(g.play, points) {
		switch id {
		case "single":
			g.setMode(tictactoe.Single)
		case "multi":
			g.setMode(tictactoe.Multi)
		case "reset":
			g.resetTable()
		case "back":
			g.back()
			return
		}
	}
	for _, p := range points {
		if g.table.Game().Over {
			if p.In(ui.PlayAgainRect(g.board.Rect)) {
				g.resetTable()
			}
			continue
		}
		if idx := ui.BoardCellAt(g.board.Rect, p); idx >= 0 {
			g.clickCell(idx, now)
		}
	}
	hub.PlayTable(g.sound, g.table.Update(now))
}

func (g *Game) clickCell(idx int, now time.Time) {
	events, err := g.table.Click(idx, now)
	if err != nil {
		g.log.Debug("move refused", "index", idx, "err", err)
		return
	}
	hub.PlayTable(g.sound, events)
}

func (g *Game) resetTable() {
	g.table.Reset()
	g.sound.Play(sound.Start)
}

func (g *Game) setMode(m tictactoe.Mode) {
	g.table.SetMode(m)
	g.sound.Play(sound.Click)
}

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case screenSnake:
		screen.Fill(snakeBG)
		s := g.snake.Session()
		g.snakePainter.Blit(screen, s.Cells(), render.SnakePalette, s.Grid().CellSize, 0, 0)
		g.overlay.Draw(screen, s, g.snake.FX(), g.now(), 0, 0)
		g.snakeHUD.Draw(screen, g.play)
	case screenTicTacToe:
		screen.Fill(tttBG)
		ui.DrawBubbles(screen, g.bubbles, bubbleTint)
		g.board.Draw(screen, g.table, g.now())
		g.tableHUD.Draw(screen, g.play)
	default:
		accent, bg := tttAccent, tttBG
		if e, ok := g.carousel.Current(); ok && e.Key == "snake" {
			accent, bg = snakeAccent, snakeBG
		}
		screen.Fill(bg)
		ui.DrawBubbles(screen, g.bubbles, bubbleTint)
		g.hubView.Draw(screen, g.carousel, g.w, accent)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Size reports the logical screen size for window setup.
func (g *Game) Size() (int, int) { return g.w, g.h }
