package core

import "fmt"

// Grid stores a fixed-size 2D field of cell states in row-major order.
// Its dimensions never change after construction.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, w, h)
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// MustGrid is NewGrid for dimensions known to be valid; it panics otherwise.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice so renderers can scan it directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Alive reports the state of cell (x, y). It panics with *OutOfBoundsError
// when the coordinate lies outside the grid.
func (g *Grid) Alive(x, y int) bool {
	g.check(x, y)
	return g.cells[y*g.w+x]
}

// Set updates the state of cell (x, y). It panics with *OutOfBoundsError
// when the coordinate lies outside the grid.
func (g *Grid) Set(x, y int, alive bool) {
	g.check(x, y)
	g.cells[y*g.w+x] = alive
}

func (g *Grid) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, Size: g.Size()})
	}
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: append([]bool(nil), g.cells...)}
}

// CopyFrom overwrites g with the contents of src. Both grids must share the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.Size() != src.Size() {
		return fmt.Errorf("copy %dx%d into %dx%d grid: size mismatch", src.w, src.h, g.w, g.h)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Size() != other.Size() {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// LiveCells lists the coordinates of every live cell in row-major order.
func (g *Grid) LiveCells() []Point {
	var pts []Point
	for i, c := range g.cells {
		if c {
			pts = append(pts, Point{X: i % g.w, Y: i / g.w})
		}
	}
	return pts
}
