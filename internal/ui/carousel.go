//go:build ebiten

package ui

import (
	"image/color"

	"game-hub/internal/hub"

	"github.com/hajimehoshi/ebiten/v2"
)

// Carousel draws the hub's game picker.
type Carousel struct {
	Layout HubLayout
	canvas *canvas
}

// NewCarousel returns a view for a w*h screen and n entries.
func NewCarousel(w, h, n int) *Carousel {
	return &Carousel{Layout: NewHubLayout(w, h, n), canvas: newCanvas()}
}

// Draw renders the title, the selected entry card, arrows and dots.
func (v *Carousel) Draw(screen *ebiten.Image, c *hub.Carousel, w int, accent color.RGBA) {
	cv := v.canvas
	l := v.Layout
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	cv.fillRect(screen, 0, 0, float64(w), 56, accent)
	cv.drawTextCentered(screen, "Game Hub", float64(w)/2, 28, 3, white)

	card := l.Card
	cv.fillRect(screen, float64(card.Min.X), float64(card.Min.Y), float64(card.Dx()), float64(card.Dy()), color.RGBA{R: 255, G: 255, B: 255, A: 26})
	if e, ok := c.Current(); ok {
		cx := float64(card.Min.X+card.Max.X) / 2
		cv.drawTextCentered(screen, e.Title, cx, float64(card.Min.Y)+60, 3, white)
		cv.drawTextCentered(screen, e.Description, cx, float64(card.Min.Y)+120, 1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	cv.drawButton(screen, Button{ID: "prev", Label: "<", Rect: l.Prev}, c.Len() > 1)
	cv.drawButton(screen, Button{ID: "next", Label: ">", Rect: l.Next}, c.Len() > 1)
	for i, d := range l.Dots {
		col := color.RGBA{R: 255, G: 255, B: 255, A: 77}
		if i == c.Index() {
			col = white
		}
		cx := float64(d.Min.X+d.Max.X) / 2
		cy := float64(d.Min.Y+d.Max.Y) / 2
		cv.drawEllipse(screen, cx, cy, float64(d.Dx())/2, float64(d.Dy())/2, col)
	}
	cv.fillRect(screen, float64(l.Play.Min.X), float64(l.Play.Min.Y), float64(l.Play.Dx()), float64(l.Play.Dy()), accent)
	cv.drawTextCentered(screen, "Play", float64(l.Play.Min.X+l.Play.Max.X)/2, float64(l.Play.Min.Y+l.Play.Max.Y)/2, 2, white)
}
