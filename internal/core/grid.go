package core

const (
	// DefaultGridSize is the number of cells along each side of the playfield.
	DefaultGridSize = 20
	// DefaultCellSize is the edge length of one cell in logical pixels.
	DefaultCellSize = 20
)

// Cell is a (column, row) coordinate on the grid.
type Cell struct {
	Col int
	Row int
}

// Add offsets the cell by (dc, dr).
func (c Cell) Add(dc, dr int) Cell { return Cell{Col: c.Col + dc, Row: c.Row + dr} }

// Grid is a square N×N playfield of uniform cells. Pixel sizes are derived
// from N and the cell size.
type Grid struct {
	N        int
	CellSize int
}

// NewGrid returns a grid, substituting defaults for non-positive values.
func NewGrid(n, cellSize int) Grid {
	if n <= 0 {
		n = DefaultGridSize
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Grid{N: n, CellSize: cellSize}
}

// Size reports the grid dimensions in cells.
func (g Grid) Size() Size { return Size{W: g.N, H: g.N} }

// PixelSize is the edge length of the drawing surface.
func (g Grid) PixelSize() int { return g.N * g.CellSize }

// Total is the number of cells on the grid.
func (g Grid) Total() int { return g.N * g.N }

// Index returns the row-major slice index of c.
func (g Grid) Index(c Cell) int { return c.Row*g.N + c.Col }

// CellAt is the inverse of Index.
func (g Grid) CellAt(idx int) Cell { return Cell{Col: idx % g.N, Row: idx / g.N} }

// InBounds reports whether c lies inside [0,N)×[0,N).
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.N && c.Row >= 0 && c.Row < g.N
}

// Wrap applies toroidal wrapping to c.
func (g Grid) Wrap(c Cell) Cell {
	c.Col = (c.Col%g.N + g.N) % g.N
	c.Row = (c.Row%g.N + g.N) % g.N
	return c
}

// ToPixel returns the top-left pixel of c.
func (g Grid) ToPixel(c Cell) (int, int) {
	return c.Col * g.CellSize, c.Row * g.CellSize
}

// Center returns the pixel centre of c.
func (g Grid) Center(c Cell) (float64, float64) {
	x, y := g.ToPixel(c)
	half := float64(g.CellSize) / 2
	return float64(x) + half, float64(y) + half
}
