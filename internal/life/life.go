package life

import (
	"fmt"
	"strconv"

	"lifeloop/internal/core"
)

// Life runs Conway's Game of Life with two alternating buffers.
type Life struct {
	cfg Config
	cur *core.Grid
	nxt *core.Grid
	gen int
}

// New returns a Life simulation seeded according to cfg.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, cur: cur, nxt: core.MustGrid(cfg.Width, cfg.Height)}
	if err := cfg.seedGrid(l.cur, cfg.Seed); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. The grid is replaced on every Step,
// so callers must not hold it across ticks.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the number of ticks since the last reset.
func (l *Life) Generation() int { return l.gen }

// Edge returns the configured edge policy.
func (l *Life) Edge() Edge { return l.cfg.Edge }

// Reset reseeds the board. The seed only affects soup seeding.
func (l *Life) Reset(seed int64) {
	// The seed pattern fit this grid in New, so reseeding cannot fail.
	if err := l.cfg.seedGrid(l.cur, seed); err != nil {
		panic(err)
	}
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if err := NextGeneration(l.cur, l.nxt, l.cfg.Edge); err != nil {
		panic(err)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Parameters reports the simulation state for HUD display.
func (l *Life) Parameters() core.ParameterSnapshot {
	return snapshot(l.Name(), l.cfg, l.gen, l.cur.Population())
}

// Static displays the seeded pattern without ever advancing it. It exists as
// an explicitly selected mode and is never used as a fallback.
type Static struct {
	cfg Config
	cur *core.Grid
}

// NewStatic returns a Static display seeded according to cfg.
func NewStatic(cfg Config) (*Static, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if err := cfg.seedGrid(cur, cfg.Seed); err != nil {
		return nil, err
	}
	return &Static{cfg: cfg, cur: cur}, nil
}

// Name returns the simulation identifier.
func (s *Static) Name() string { return "static" }

// Size returns the grid dimensions.
func (s *Static) Size() core.Size { return s.cur.Size() }

// Grid exposes the displayed grid.
func (s *Static) Grid() *core.Grid { return s.cur }

// Generation is always zero.
func (s *Static) Generation() int { return 0 }

// Reset reseeds the board.
func (s *Static) Reset(seed int64) {
	if err := s.cfg.seedGrid(s.cur, seed); err != nil {
		panic(err)
	}
}

// Step does nothing; the static mode never applies the rule.
func (s *Static) Step() {}

// Parameters reports the displayed state for HUD display.
func (s *Static) Parameters() core.ParameterSnapshot {
	return snapshot(s.Name(), s.cfg, 0, s.cur.Population())
}

func snapshot(mode string, cfg Config, gen, pop int) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Value: mode},
				{Key: "edge", Label: "Edge", Value: cfg.Edge.String()},
				{Key: "size", Label: "Grid", Value: fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)},
				{Key: "seed", Label: "Seed", Value: cfg.Pattern},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(gen)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(pop)},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		sim, err := New(c)
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
	core.Register("static", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		sim, err := NewStatic(c)
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
