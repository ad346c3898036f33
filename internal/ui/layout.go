package ui

import (
	"image"

	"game-hub/internal/core"
)

// Button is a clickable rectangle identified by ID.
type Button struct {
	ID    string
	Label string
	Rect  image.Rectangle
}

// HitButton returns the ID of the first button containing p.
func HitButton(buttons []Button, p image.Point) (string, bool) {
	for _, b := range buttons {
		if pointInRect(p.X, p.Y, b.Rect) {
			return b.ID, true
		}
	}
	return "", false
}

// DPad lays out four direction buttons in a cross centred on (cx, cy).
func DPad(cx, cy, size, gap int) []Button {
	half := size / 2
	at := func(dx, dy int) image.Rectangle {
		x := cx + dx*(size+gap) - half
		y := cy + dy*(size+gap) - half
		return image.Rect(x, y, x+size, y+size)
	}
	return []Button{
		{ID: "up", Label: "^", Rect: at(0, -1)},
		{ID: "left", Label: "<", Rect: at(-1, 0)},
		{ID: "right", Label: ">", Rect: at(1, 0)},
		{ID: "down", Label: "v", Rect: at(0, 1)},
	}
}

// BoardCellRect returns the rectangle of cell idx on a 3x3 board.
func BoardCellRect(board image.Rectangle, idx int) image.Rectangle {
	cw := board.Dx() / 3
	ch := board.Dy() / 3
	col, row := idx%3, idx/3
	x := board.Min.X + col*cw
	y := board.Min.Y + row*ch
	return image.Rect(x, y, x+cw, y+ch)
}

// BoardCellAt maps p to a cell index on a 3x3 board, or -1 outside it.
func BoardCellAt(board image.Rectangle, p image.Point) int {
	if !pointInRect(p.X, p.Y, board) {
		return -1
	}
	cw := board.Dx() / 3
	ch := board.Dy() / 3
	if cw <= 0 || ch <= 0 {
		return -1
	}
	col := (p.X - board.Min.X) / cw
	row := (p.Y - board.Min.Y) / ch
	if col > 2 || row > 2 {
		return -1
	}
	return row*3 + col
}

// Dots lays out n carousel indicator dots centred horizontally on center.
func Dots(center image.Point, n, size, gap int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	total := n*size + (n-1)*gap
	x := center.X - total/2
	out := make([]image.Rectangle, n)
	for i := range out {
		out[i] = image.Rect(x, center.Y-size/2, x+size, center.Y-size/2+size)
		x += size + gap
	}
	return out
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// Bubble is one decorative background bubble.
type Bubble struct {
	X, Y   float64
	R      float64
	Speed  float64
	Offset float64
}

// Bubbles floats a fixed set of bubbles upwards, re-entering at the bottom.
type Bubbles struct {
	w, h  float64
	items []Bubble
	rng   *core.RNG
}

// NewBubbles scatters n bubbles over a w*h area.
func NewBubbles(n int, w, h float64, seed int64) *Bubbles {
	b := &Bubbles{w: w, h: h, rng: core.NewRNG(seed)}
	b.items = make([]Bubble, n)
	for i := range b.items {
		b.items[i] = b.spawn(b.rng.Float64() * h)
	}
	return b
}

func (b *Bubbles) spawn(y float64) Bubble {
	r := 5 + b.rng.Float64()*15
	return Bubble{
		X:      b.rng.Float64() * b.w,
		Y:      y,
		R:      r,
		Speed:  b.h / (10 + b.rng.Float64()*20),
		Offset: b.rng.Float64(),
	}
}

// Advance moves the bubbles by dt seconds.
func (b *Bubbles) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range b.items {
		it := &b.items[i]
		it.Y -= it.Speed * dt
		if it.Y+it.R < 0 {
			*it = b.spawn(b.h + it.R)
		}
	}
}

// Items exposes the bubbles. Callers must not modify the slice.
func (b *Bubbles) Items() []Bubble { return b.items }

// Alpha fades a bubble out as it rises, in [0,1].
func (b *Bubbles) Alpha(it Bubble) float64 {
	if b.h <= 0 {
		return 0
	}
	a := it.Y / b.h
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// HubLayout positions the carousel screen's controls.
type HubLayout struct {
	Card image.Rectangle
	Prev image.Rectangle
	Next image.Rectangle
	Play image.Rectangle
	Dots []image.Rectangle
}

// NewHubLayout lays out a w*h hub screen for n entries.
func NewHubLayout(w, h, n int) HubLayout {
	l := HubLayout{
		Card: image.Rect(64, 80, w-64, h-76),
		Prev: image.Rect(12, h/2-24, 52, h/2+24),
		Next: image.Rect(w-52, h/2-24, w-12, h/2+24),
		Play: image.Rect(w/2-70, h-60, w/2+70, h-24),
	}
	l.Dots = Dots(image.Pt(w/2, l.Card.Max.Y-20), n, 10, 8)
	return l
}

// PlayAgainRect is the button shown over a finished tic-tac-toe board.
func PlayAgainRect(board image.Rectangle) image.Rectangle {
	cx := (board.Min.X + board.Max.X) / 2
	cy := (board.Min.Y + board.Max.Y) / 2
	return image.Rect(cx-70, cy+30, cx+70, cy+66)
}
