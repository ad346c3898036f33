//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"time"

	"game-hub/internal/render"
	"game-hub/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws everything on top of the snake grid: food, the head's eyes,
// score pops and the end-of-game veil. It only reads game state.
type Overlay struct {
	canvas *canvas
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{canvas: newCanvas()}
}

// Draw renders the overlay for s with its grid origin at (ox, oy).
func (o *Overlay) Draw(screen *ebiten.Image, s *snake.Session, fx *snake.FX, now time.Time, ox, oy float64) {
	grid := s.Grid()
	cell := float64(grid.CellSize)

	if food := s.Food(); food.Kind != 0 {
		cx, cy := grid.Center(food.Cell)
		o.drawFood(screen, food.Kind, ox+cx, oy+cy, cell, fx)
	}
	o.drawEyes(screen, s, ox, oy, cell)

	for _, pop := range fx.Pops(now) {
		age := pop.Age(now)
		col := render.Fade(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1-age)
		o.canvas.drawTextCentered(screen, "+"+strconv.Itoa(pop.Points), ox+pop.X, oy+pop.Y-cell*age, 1.5, col)
	}

	if s.Over() {
		o.drawVeil(screen, s, ox, oy, float64(grid.PixelSize()))
	}
}

func (o *Overlay) drawFood(screen *ebiten.Image, kind snake.Kind, cx, cy, cell float64, fx *snake.FX) {
	r := cell * 0.4
	switch kind {
	case snake.Coin:
		// A spinning coin is an ellipse whose width follows the rotation.
		rx := r * math.Max(math.Abs(math.Cos(fx.Rotation)), 0.15)
		o.canvas.drawEllipse(screen, cx, cy, rx, r, render.CoinColor)
		o.canvas.drawEllipse(screen, cx, cy, rx*0.6, r*0.6, color.RGBA{R: 253, G: 224, B: 71, A: 255})
	case snake.Apple:
		ar := r * fx.PulseScale()
		o.canvas.drawEllipse(screen, cx, cy+ar*0.1, ar, ar, render.AppleColor)
		o.canvas.drawLine(screen, cx, cy-ar*0.8, cx+ar*0.5, cy-ar*1.2, math.Max(cell*0.12, 1), render.LeafColor)
	}
}

func (o *Overlay) drawEyes(screen *ebiten.Image, s *snake.Session, ox, oy, cell float64) {
	head := s.Body().Head()
	if !s.Grid().InBounds(head) {
		return
	}
	cx, cy := s.Grid().Center(head)
	cx += ox
	cy += oy
	dc, dr := s.Heading().Delta()
	fx, fy := float64(dc), float64(dr)
	// Perpendicular to the heading.
	px, py := -fy, fx
	forward := cell * 0.15
	apart := cell * 0.2
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pupil := color.RGBA{R: 20, G: 20, B: 30, A: 255}
	for _, side := range []float64{-1, 1} {
		ex := cx + fx*forward + px*apart*side
		ey := cy + fy*forward + py*apart*side
		o.canvas.drawEllipse(screen, ex, ey, cell*0.12, cell*0.12, white)
		o.canvas.drawEllipse(screen, ex+fx*cell*0.04, ey+fy*cell*0.04, cell*0.06, cell*0.06, pupil)
	}
}

func (o *Overlay) drawVeil(screen *ebiten.Image, s *snake.Session, ox, oy, size float64) {
	o.canvas.fillRect(screen, ox, oy, size, size, color.RGBA{A: 170})
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	headline := "Game Over!"
	if s.Cleared() {
		headline = "Board cleared!"
	}
	cx := ox + size/2
	cy := oy + size/2
	o.canvas.drawTextCentered(screen, headline, cx, cy-40, 3, white)
	o.canvas.drawTextCentered(screen, "Your score: "+strconv.Itoa(s.Score()), cx, cy, 2, white)
	o.canvas.drawTextCentered(screen, "Press R or tap to play again", cx, cy+36, 1, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

// VeilRect is the area that restarts a finished game when tapped.
func VeilRect(ox, oy, size int) image.Rectangle {
	return image.Rect(ox, oy, ox+size, oy+size)
}
