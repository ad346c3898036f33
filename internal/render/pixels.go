package render

import (
	"image/color"
	"math"

	"game-hub/internal/snake"
)

// SnakePalette maps snake display values to colours.
var SnakePalette = []color.RGBA{
	snake.CellLight: {R: 170, G: 215, B: 81, A: 255},
	snake.CellDark:  {R: 162, G: 209, B: 73, A: 255},
	snake.CellBody:  {R: 78, G: 124, B: 246, A: 255},
	snake.CellTail:  {R: 120, G: 160, B: 250, A: 255},
	snake.CellHead:  {R: 44, G: 82, B: 214, A: 255},
}

// Food colours.
var (
	CoinColor  = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	AppleColor = color.RGBA{R: 231, G: 71, B: 29, A: 255}
	LeafColor  = color.RGBA{R: 34, G: 139, B: 34, A: 255}
)

// PaletteRGBA converts cell values into a fresh RGBA pixel buffer.
func PaletteRGBA(cells []uint8, palette []color.RGBA) []byte {
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	return buf
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last colour.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Fade scales the alpha of c by f in [0,1], premultiplying the colour
// channels as ebiten and image/color expect.
func Fade(c color.RGBA, f float64) color.RGBA {
	if f <= 0 {
		return color.RGBA{}
	}
	if f >= 1 {
		return c
	}
	scale := func(v uint8) uint8 { return uint8(math.Round(float64(v) * f)) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
