package snake

import "game-hub/internal/core"

// Body is the ordered list of cells occupied by the snake, head first.
type Body struct {
	cells []core.Cell
}

// NewBody builds a body from head to tail. It panics on an empty body.
func NewBody(cells ...core.Cell) *Body {
	if len(cells) == 0 {
		panic("snake: body must have at least one segment")
	}
	return &Body{cells: append([]core.Cell(nil), cells...)}
}

// Head returns the first segment.
func (b *Body) Head() core.Cell { return b.cells[0] }

// Tail returns the last segment.
func (b *Body) Tail() core.Cell { return b.cells[len(b.cells)-1] }

// Len reports the number of segments.
func (b *Body) Len() int { return len(b.cells) }

// Cells exposes the segments head first. Callers must not modify the slice.
func (b *Body) Cells() []core.Cell { return b.cells }

// Advance prepends head. Unless grew is set the last segment is dropped so
// the length stays constant.
func (b *Body) Advance(head core.Cell, grew bool) {
	if grew {
		b.cells = append(b.cells, core.Cell{})
	}
	copy(b.cells[1:], b.cells[:len(b.cells)-1])
	b.cells[0] = head
}

// Occupies reports whether any segment equals c.
func (b *Body) Occupies(c core.Cell) bool {
	for _, s := range b.cells {
		if s == c {
			return true
		}
	}
	return false
}
