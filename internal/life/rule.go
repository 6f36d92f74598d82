// Package life implements Conway's Game of Life on a fixed-size core.Grid.
package life

import (
	"errors"
	"fmt"
	"strings"

	"lifeloop/internal/core"
)

// Edge selects how neighbor lookups treat coordinates beyond the grid.
type Edge int

const (
	// EdgeBounded treats every out-of-bounds neighbor as dead.
	EdgeBounded Edge = iota
	// EdgeToroidal wraps neighbors around to the opposite edge.
	EdgeToroidal
)

func (e Edge) String() string {
	switch e {
	case EdgeBounded:
		return "bounded"
	case EdgeToroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge maps a policy name to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bounded", "clamped":
		return EdgeBounded, nil
	case "toroidal", "torus", "wrap":
		return EdgeToroidal, nil
	}
	return EdgeBounded, fmt.Errorf("%w: unknown edge policy %q", core.ErrInvalidConfig, s)
}

// ErrAliased is returned when a transition is asked to write into its input.
var ErrAliased = errors.New("next generation must not alias its input")

// Rule reports whether a cell is alive in the next generation given its
// current state and live neighbor count.
func Rule(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Neighbors counts the live cells in the Moore neighborhood of (x, y).
func Neighbors(g *core.Grid, x, y int, edge Edge) int {
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if edge == EdgeToroidal {
				nx = (nx + w) % w
				ny = (ny + h) % h
			} else if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if cells[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

// NextGeneration evaluates every cell of src and writes the successor
// generation into dst. Every neighbor read observes src only, so dst must be
// a distinct grid of the same size.
func NextGeneration(src, dst *core.Grid, edge Edge) error {
	if src == dst {
		return ErrAliased
	}
	if src.Size() != dst.Size() {
		return fmt.Errorf("next generation: src %dx%d, dst %dx%d: size mismatch",
			src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	w, h := src.Width(), src.Height()
	cur, nxt := src.Cells(), dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = Rule(cur[idx], Neighbors(src, x, y, edge))
		}
	}
	return nil
}

// Next returns the successor of g as a freshly allocated grid using the
// bounded edge policy. g is not modified.
func Next(g *core.Grid) *core.Grid {
	return NextWithEdge(g, EdgeBounded)
}

// NextWithEdge is Next with an explicit edge policy.
func NextWithEdge(g *core.Grid, edge Edge) *core.Grid {
	out := core.MustGrid(g.Width(), g.Height())
	// src and out never alias and share a size, so this cannot fail.
	_ = NextGeneration(g, out, edge)
	return out
}
