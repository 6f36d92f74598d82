package app

import (
	"errors"
	"flag"
	"math"
	"testing"

	"lifeloop/internal/core"
	_ "lifeloop/internal/life"
)

func TestDefaultsBuild(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.GridSize(); got != (core.Size{W: 16, H: 16}) {
		t.Fatalf("GridSize = %+v, expected 16x16", got)
	}
	loop, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sim := loop.Scheduler().Sim()
	if sim.Name() != "life" || sim.Grid().Population() != 5 {
		t.Fatalf("sim %s population %d, expected life with a 5-cell glider", sim.Name(), sim.Grid().Population())
	}
}

func TestBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "300", "-cell", "10", "-tps", "8", "-seed", "blinker", "-x", "4", "-y", "4", "-edge", "toroidal", "-mode", "static"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 300 || cfg.CellSize != 10 || cfg.TPS != 8 || cfg.Seed != "blinker" || cfg.Edge != "toroidal" || cfg.Mode != "static" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.GridSize(); got != (core.Size{W: 30, H: 50}) {
		t.Fatalf("GridSize = %+v, expected 30x50", got)
	}
	loop, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if loop.Scheduler().Sim().Name() != "static" {
		t.Fatalf("mode = %s, expected static", loop.Scheduler().Sim().Name())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"padding fills cell", func(c *Config) { c.Padding = c.CellSize }},
		{"cell larger than window", func(c *Config) { c.CellSize = 600; c.Padding = 0 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"sub-nanosecond tick", func(c *Config) { c.TPS = 2_000_000_000 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"bad color", func(c *Config) { c.OnColor = "#12" }},
		{"unknown mode", func(c *Config) { c.Mode = "briansbrain" }},
		{"unknown pattern", func(c *Config) { c.Seed = "pulsar" }},
		{"unknown edge", func(c *Config) { c.Edge = "spiral" }},
		{"density", func(c *Config) { c.Seed = "soup"; c.Density = 3 }},
		{"nan density", func(c *Config) { c.Seed = "soup"; c.Density = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("Validate err = %v, expected ErrInvalidConfig", err)
			}
			if _, err := cfg.Build(); err == nil {
				t.Fatal("Build should fail on invalid config")
			}
		})
	}
}

func TestBuildRejectsSeedOutsideGrid(t *testing.T) {
	cfg := NewConfig()
	cfg.AnchorX = 15
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := cfg.Build(); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Build err = %v, expected ErrOutOfBounds", err)
	}
}

func TestSoupBuild(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "soup"
	cfg.Edge = "toroidal"
	loop, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if loop.Scheduler().Sim().Grid().Population() == 0 {
		t.Fatal("soup seeding left the grid empty")
	}
}
