package life

import (
	"fmt"
	"math"
	"strconv"

	"lifeloop/internal/core"
	"lifeloop/internal/pattern"
)

// Config controls the grid extent and initial population of a simulation.
type Config struct {
	Width  int
	Height int
	Edge   Edge

	// Pattern names a registered seed pattern, or pattern.SoupName.
	Pattern string
	Anchor  core.Point

	Seed    int64
	Density float64
}

// DefaultConfig returns the standard configuration: a glider near the top-left
// corner of a 16x16 bounded grid.
func DefaultConfig() Config {
	return Config{
		Width:   16,
		Height:  16,
		Edge:    EdgeBounded,
		Pattern: pattern.Glider.Name(),
		Anchor:  core.Point{X: 1, Y: 0},
		Seed:    42,
		Density: 0.35,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed values are reported as ErrInvalidConfig.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.Width},
		{"h", &c.Height},
		{"x", &c.Anchor.X},
		{"y", &c.Anchor.Y},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", core.ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = parsed
	}
	if v, ok := cfg["edge"]; ok {
		edge, err := ParseEdge(v)
		if err != nil {
			return c, err
		}
		c.Edge = edge
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q: %v", core.ErrInvalidConfig, v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: density=%q: %v", core.ErrInvalidConfig, v, err)
		}
		c.Density = parsed
	}
	return c, c.Validate()
}

// Validate checks the grid extent, density and seed pattern name.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", core.ErrInvalidConfig, c.Width, c.Height)
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0,1]", core.ErrInvalidConfig, c.Density)
	}
	if c.Edge != EdgeBounded && c.Edge != EdgeToroidal {
		return fmt.Errorf("%w: edge policy %v", core.ErrInvalidConfig, c.Edge)
	}
	if c.Pattern == pattern.SoupName {
		return nil
	}
	if _, ok := pattern.Lookup(c.Pattern); !ok {
		return fmt.Errorf("%w: unknown pattern %q", core.ErrInvalidConfig, c.Pattern)
	}
	return nil
}

// seedGrid clears g and writes the configured initial population.
func (c Config) seedGrid(g *core.Grid, seed int64) error {
	g.Clear()
	if c.Pattern == pattern.SoupName {
		return pattern.Soup(g, seed, c.Density)
	}
	p, ok := pattern.Lookup(c.Pattern)
	if !ok {
		return fmt.Errorf("%w: unknown pattern %q", core.ErrInvalidConfig, c.Pattern)
	}
	return pattern.Stamp(g, p, c.Anchor)
}
