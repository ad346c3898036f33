//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"game-hub/internal/tictactoe"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	boardBG   = color.RGBA{R: 49, G: 46, B: 129, A: 220}
	cellBG    = color.RGBA{R: 255, G: 255, B: 255, A: 26}
	markX     = color.RGBA{R: 165, G: 180, B: 252, A: 255}
	markO     = color.RGBA{R: 249, G: 168, B: 212, A: 255}
	highlight = color.RGBA{R: 255, G: 255, B: 255, A: 60}
)

// Board draws a tic-tac-toe table.
type Board struct {
	Rect   image.Rectangle
	canvas *canvas
}

// NewBoard returns a board view filling rect.
func NewBoard(rect image.Rectangle) *Board {
	return &Board{Rect: rect, canvas: newCanvas()}
}

// Draw renders the marks, the winning line and, once the match is over, the
// result card.
func (b *Board) Draw(screen *ebiten.Image, t *tictactoe.Table, now time.Time) {
	c := b.canvas
	r := b.Rect
	c.fillRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), boardBG)

	g := t.Game()
	pulse := 1 + 0.1*math.Sin(float64(now.UnixMilli())/80)
	for idx, m := range g.Board {
		cell := BoardCellRect(r, idx).Inset(8)
		x, y := float64(cell.Min.X), float64(cell.Min.Y)
		w, h := float64(cell.Dx()), float64(cell.Dy())
		if m == tictactoe.Empty {
			c.fillRect(screen, x, y, w, h, cellBG)
			continue
		}
		scale := 1.0
		if g.InLine(idx) {
			c.fillRect(screen, x, y, w, h, highlight)
			scale = pulse
		}
		cx, cy := x+w/2, y+h/2
		size := math.Min(w, h) * 0.32 * scale
		if m == tictactoe.X {
			th := size * 0.28
			c.drawLine(screen, cx-size, cy-size, cx+size, cy+size, th, markX)
			c.drawLine(screen, cx-size, cy+size, cx+size, cy-size, th, markX)
			continue
		}
		c.drawEllipse(screen, cx, cy, size*1.1, size*1.1, markO)
		c.drawEllipse(screen, cx, cy, size*0.75, size*0.75, boardBG)
	}

	if g.Over {
		b.drawResult(screen, t)
	}
}

func (b *Board) drawResult(screen *ebiten.Image, t *tictactoe.Table) {
	c := b.canvas
	r := b.Rect
	c.fillRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), color.RGBA{A: 180})
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	c.drawTextCentered(screen, t.Result(), cx, cy-20, 3, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	c.drawButton(screen, Button{ID: "again", Label: "Play Again", Rect: PlayAgainRect(r)}, true)
}
