// Package render translates grid state into per-cell draw calls on an
// abstract drawing surface.
package render

import (
	"fmt"
	"image/color"

	"lifeloop/internal/core"
)

// Surface is the drawing capability a host window or terminal provides.
type Surface interface {
	// Fill paints the whole surface.
	Fill(c color.Color)
	// FillRect paints a w*h rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h int, c color.Color)
}

// Layout maps grid coordinates onto surface pixels.
type Layout struct {
	CellSize int
	Padding  int
}

// Validate checks that every cell yields a visible rectangle.
func (l Layout) Validate() error {
	if l.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", core.ErrInvalidConfig, l.CellSize)
	}
	if l.Padding < 0 || l.Padding >= l.CellSize {
		return fmt.Errorf("%w: padding %d outside [0,%d)", core.ErrInvalidConfig, l.Padding, l.CellSize)
	}
	return nil
}

// CellRect returns the rectangle drawn for grid cell (x, y). The padding
// offsets the origin and shrinks the side, leaving a gap on the top-left.
func (l Layout) CellRect(x, y int) (px, py, w, h int) {
	side := l.CellSize - l.Padding
	return x*l.CellSize + l.Padding, y*l.CellSize + l.Padding, side, side
}

// Extent returns the surface size covered by a grid of the given size.
func (l Layout) Extent(size core.Size) (w, h int) {
	return size.W * l.CellSize, size.H * l.CellSize
}

// Palette holds the colors used to draw a grid.
type Palette struct {
	On         color.Color
	Off        color.Color
	Background color.Color
}

// DefaultPalette draws live cells white and dead cells black on gray.
func DefaultPalette() Palette {
	return Palette{
		On:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Off:        color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Background: color.RGBA{R: 130, G: 130, B: 130, A: 255},
	}
}

// DrawGrid paints the background once and then issues exactly one FillRect
// per cell. The grid is only read.
func DrawGrid(s Surface, g *core.Grid, l Layout, p Palette) {
	s.Fill(p.Background)
	w := g.Width()
	for i, alive := range g.Cells() {
		x, y := i%w, i/w
		px, py, cw, ch := l.CellRect(x, y)
		c := p.Off
		if alive {
			c = p.On
		}
		s.FillRect(px, py, cw, ch, c)
	}
}
