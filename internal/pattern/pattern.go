// Package pattern holds named seed patterns and stamps them onto grids.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"lifeloop/internal/core"
)

// Pattern is an immutable, named list of live-cell offsets relative to an
// anchor coordinate.
type Pattern struct {
	name  string
	cells []core.Point
}

// New builds a pattern from offsets. The offsets are copied.
func New(name string, cells ...core.Point) Pattern {
	return Pattern{name: name, cells: append([]core.Point(nil), cells...)}
}

// Parse builds a pattern from a plaintext picture. 'O' or '*' marks a live
// cell and '.' or ' ' a dead one; offsets are relative to the top-left corner.
func Parse(name string, rows []string) (Pattern, error) {
	var cells []core.Point
	for y, row := range rows {
		for x, r := range row {
			switch r {
			case 'O', '*':
				cells = append(cells, core.Point{X: x, Y: y})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("pattern %q: unexpected %q at row %d col %d", name, r, y, x)
			}
		}
	}
	if len(cells) == 0 {
		return Pattern{}, fmt.Errorf("pattern %q has no live cells", name)
	}
	return Pattern{name: name, cells: cells}, nil
}

func mustParse(name string, rows ...string) Pattern {
	p, err := Parse(name, rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Cells returns a copy of the pattern offsets.
func (p Pattern) Cells() []core.Point { return append([]core.Point(nil), p.cells...) }

// Len returns the number of live cells in the pattern.
func (p Pattern) Len() int { return len(p.cells) }

// Bounds returns the minimum and maximum offsets covered by the pattern.
func (p Pattern) Bounds() (lo, hi core.Point) {
	for i, c := range p.cells {
		if i == 0 {
			lo, hi = c, c
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi
}

// Fits reports whether stamping p at anchor would stay inside g.
func (p Pattern) Fits(g *core.Grid, anchor core.Point) bool {
	for _, c := range p.cells {
		at := anchor.Add(c)
		if !g.InBounds(at.X, at.Y) {
			return false
		}
	}
	return true
}

// Stamp sets anchor+offset alive for every offset of p. Other cells are left
// untouched. If any target falls outside the grid nothing is written and the
// returned error wraps *core.OutOfBoundsError.
func Stamp(g *core.Grid, p Pattern, anchor core.Point) error {
	for _, c := range p.cells {
		at := anchor.Add(c)
		if !g.InBounds(at.X, at.Y) {
			oob := &core.OutOfBoundsError{X: at.X, Y: at.Y, Size: g.Size()}
			return fmt.Errorf("stamp %s at (%d,%d): %w", p.name, anchor.X, anchor.Y, oob)
		}
	}
	for _, c := range p.cells {
		at := anchor.Add(c)
		g.Set(at.X, at.Y, true)
	}
	return nil
}

var (
	// Blinker is the period-2 oscillator, stamped vertically through the anchor.
	Blinker = New("blinker", core.Point{X: 0, Y: -1}, core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 1})
	// Glider travels (+1,+1) every four generations.
	Glider = New("glider",
		core.Point{X: 0, Y: 0},
		core.Point{X: 1, Y: 1},
		core.Point{X: 1, Y: 2},
		core.Point{X: 0, Y: 2},
		core.Point{X: -1, Y: 2},
	)
	// Block is the 2x2 still life.
	Block = mustParse("block", "OO", "OO")
	// Beacon is a period-2 oscillator made of two diagonal blocks.
	Beacon = mustParse("beacon", "OO..", "OO..", "..OO", "..OO")
	// Toad is a period-2 oscillator.
	Toad = mustParse("toad", ".OOO", "OOO.")
	// LWSS is the lightweight spaceship, travelling left.
	LWSS = mustParse("lwss", ".O..O", "O....", "O...O", "OOOO.")
)

var registry = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Blinker, Glider, Block, Beacon, Toad, LWSS} {
		Register(p)
	}
}

// Register adds p to the named pattern registry, replacing any pattern with
// the same name.
func Register(p Pattern) {
	if p.name == "" || len(p.cells) == 0 {
		return
	}
	registry[strings.ToLower(p.name)] = p
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[strings.ToLower(name)]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
