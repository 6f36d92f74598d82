package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"lifeloop/internal/core"
	"lifeloop/internal/engine"
	"lifeloop/internal/life"
	"lifeloop/internal/render"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Padding  int

	OnColor    string
	OffColor   string
	Background string

	TPS int
	FPS int

	Mode     string
	Seed     string
	AnchorX  int
	AnchorY  int
	Edge     string
	RandSeed int64
	Density  float64
}

// NewConfig returns a Config populated with sensible defaults: a glider on a
// 500x500 window of 30px cells, advancing twice a second.
func NewConfig() *Config {
	return &Config{
		Width:      500,
		Height:     500,
		CellSize:   30,
		Padding:    2,
		OnColor:    "white",
		OffColor:   "black",
		Background: "gray",
		TPS:        2,
		FPS:        30,
		Mode:       "life",
		Seed:       "glider",
		AnchorX:    1,
		AnchorY:    0,
		Edge:       "bounded",
		RandSeed:   42,
		Density:    0.35,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Padding, "padding", c.Padding, "gap between cells in pixels")
	fs.StringVar(&c.OnColor, "on", c.OnColor, "live cell color (name or #rrggbb)")
	fs.StringVar(&c.OffColor, "off", c.OffColor, "dead cell color (name or #rrggbb)")
	fs.StringVar(&c.Background, "bg", c.Background, "background color (name or #rrggbb)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.FPS, "fps", c.FPS, "terminal frames per second")
	fs.StringVar(&c.Mode, "mode", c.Mode, "simulation mode (life or static)")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed pattern name, or soup")
	fs.IntVar(&c.AnchorX, "x", c.AnchorX, "seed anchor column")
	fs.IntVar(&c.AnchorY, "y", c.AnchorY, "seed anchor row")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy (bounded or toroidal)")
	fs.Int64Var(&c.RandSeed, "rand", c.RandSeed, "random seed for soup seeding")
	fs.Float64Var(&c.Density, "density", c.Density, "soup density in [0,1]")
}

// GridSize derives the grid extent from the window and cell size.
func (c *Config) GridSize() core.Size {
	if c.CellSize <= 0 {
		return core.Size{}
	}
	return core.Size{W: c.Width / c.CellSize, H: c.Height / c.CellSize}
}

// Layout returns the pixel layout of grid cells.
func (c *Config) Layout() render.Layout {
	return render.Layout{CellSize: c.CellSize, Padding: c.Padding}
}

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	on, err := render.ParseColor(c.OnColor)
	if err != nil {
		return p, fmt.Errorf("on color: %w", err)
	}
	off, err := render.ParseColor(c.OffColor)
	if err != nil {
		return p, fmt.Errorf("off color: %w", err)
	}
	bg, err := render.ParseColor(c.Background)
	if err != nil {
		return p, fmt.Errorf("background color: %w", err)
	}
	return render.Palette{On: on, Off: off, Background: bg}, nil
}

// SimConfig renders the simulation settings as the string map accepted by the
// registered sim factories.
func (c *Config) SimConfig() map[string]string {
	size := c.GridSize()
	return map[string]string{
		"w":       strconv.Itoa(size.W),
		"h":       strconv.Itoa(size.H),
		"edge":    c.Edge,
		"pattern": c.Seed,
		"x":       strconv.Itoa(c.AnchorX),
		"y":       strconv.Itoa(c.AnchorY),
		"seed":    strconv.FormatInt(c.RandSeed, 10),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}

// Validate rejects every setting that would leave the loop without a usable
// grid, tick rate or palette. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{core.ErrInvalidConfig}, args...)...))
	}
	if c.Width <= 0 || c.Height <= 0 {
		bad("window size %dx%d", c.Width, c.Height)
	}
	if _, err := core.NewFixedStep(c.TPS); err != nil {
		errs = append(errs, err)
	}
	if c.FPS <= 0 {
		bad("frames per second %d", c.FPS)
	}
	if err := c.Layout().Validate(); err != nil {
		errs = append(errs, err)
	} else if size := c.GridSize(); size.W <= 0 || size.H <= 0 {
		bad("%dx%d window holds no %dpx cells", c.Width, c.Height, c.CellSize)
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := core.Sims()[c.Mode]; !ok {
		bad("unknown mode %q (have %v)", c.Mode, core.SimNames())
	}
	if len(errs) == 0 {
		if _, err := life.FromMap(c.SimConfig()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build validates the configuration and assembles the seeded simulation,
// its scheduler and the render loop.
func (c *Config) Build() (*engine.Loop, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}
	sim, err := core.NewSim(c.Mode, c.SimConfig())
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", c.Mode, err)
	}
	sched, err := engine.NewScheduler(sim, c.TPS)
	if err != nil {
		return nil, err
	}
	return engine.NewLoop(sched, c.Layout(), palette)
}

// Summary describes the configuration in one log line.
func (c *Config) Summary() string {
	size := c.GridSize()
	return fmt.Sprintf("mode=%s seed=%s@(%d,%d) grid=%dx%d edge=%s tps=%d cell=%dpx",
		c.Mode, c.Seed, c.AnchorX, c.AnchorY, size.W, size.H, c.Edge, c.TPS, c.CellSize)
}
