//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"game-hub/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const discSize = 64

// canvas holds the shared primitives every view draws with: a white pixel
// for rectangles and lines, a white disc for circles and ellipses, and a
// cache of rendered labels for scaled text.
type canvas struct {
	pixel  *ebiten.Image
	disc   *ebiten.Image
	labels map[string]*ebiten.Image
}

func newCanvas() *canvas {
	c := &canvas{labels: make(map[string]*ebiten.Image)}
	c.pixel = ebiten.NewImage(1, 1)
	c.pixel.Fill(color.White)
	c.disc = ebiten.NewImage(discSize, discSize)
	vector.DrawFilledCircle(c.disc, discSize/2, discSize/2, discSize/2, color.White, true)
	return c
}

func (c *canvas) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(c.pixel, op)
}

func (c *canvas) drawLine(dst *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(c.pixel, op)
}

func (c *canvas) drawEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*rx/discSize, 2*ry/discSize)
	op.GeoM.Translate(cx-rx, cy-ry)
	op.ColorScale.ScaleWithColor(col)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(c.disc, op)
}

func (c *canvas) drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, col)
}

// drawTextCentered draws s scaled by scale with its centre at (cx, cy).
func (c *canvas) drawTextCentered(dst *ebiten.Image, s string, cx, cy, scale float64, col color.RGBA) {
	if s == "" {
		return
	}
	img, ok := c.labels[s]
	if !ok {
		b := text.BoundString(basicfont.Face7x13, s)
		img = ebiten.NewImage(b.Dx()+2, b.Dy()+2)
		text.Draw(img, s, basicfont.Face7x13, 1-b.Min.X, 1-b.Min.Y, color.White)
		c.labels[s] = img
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(img, op)
}

func (c *canvas) drawButton(dst *ebiten.Image, b Button, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	r := b.Rect
	c.fillRect(dst, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), bg)
	c.drawTextCentered(dst, b.Label, float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2, 1, fg)
}

// DrawBubbles paints the floating background bubbles.
func DrawBubbles(dst *ebiten.Image, b *Bubbles, tint color.RGBA) {
	if b == nil {
		return
	}
	c := sharedCanvas()
	for _, it := range b.Items() {
		col := render.Fade(tint, b.Alpha(it))
		c.drawEllipse(dst, it.X, it.Y, it.R, it.R, col)
	}
}

var shared *canvas

func sharedCanvas() *canvas {
	if shared == nil {
		shared = newCanvas()
	}
	return shared
}
