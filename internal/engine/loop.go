package engine

import (
	"context"
	"time"

	"lifeloop/internal/render"
)

// Host is the display side of the loop: it reports frame timing and the
// stop request, and presents each finished frame.
type Host interface {
	// FrameTime returns the real time elapsed since the previous frame.
	FrameTime() time.Duration
	// ShouldStop reports whether the user asked to close the display.
	ShouldStop() bool
	// Present shows the drawn frame and waits for the next one.
	Present()
}

// Loop ties a Scheduler to a renderer layout.
type Loop struct {
	sched   *Scheduler
	layout  render.Layout
	palette render.Palette
	frames  int
}

// NewLoop returns a loop drawing sched's simulation with layout and palette.
func NewLoop(sched *Scheduler, layout render.Layout, palette render.Palette) (*Loop, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Loop{sched: sched, layout: layout, palette: palette}, nil
}

// Scheduler returns the scheduler driven by the loop.
func (l *Loop) Scheduler() *Scheduler { return l.sched }

// Layout returns the cell layout.
func (l *Loop) Layout() render.Layout { return l.layout }

// Palette returns the colors used for drawing.
func (l *Loop) Palette() render.Palette { return l.palette }

// Frames returns the number of frames rendered.
func (l *Loop) Frames() int { return l.frames }

// Advance runs the ticks due after elapsed real time.
func (l *Loop) Advance(elapsed time.Duration) int {
	return l.sched.Frame(elapsed)
}

// Render draws the current generation onto s.
func (l *Loop) Render(s render.Surface) {
	render.DrawGrid(s, l.sched.Sim().Grid(), l.layout, l.palette)
	l.frames++
}

// Run iterates poll, tick, render until the host requests a stop or ctx is
// cancelled. Ticks are never interrupted; cancellation is observed only at
// the top of an iteration.
func (l *Loop) Run(ctx context.Context, host Host, s render.Surface) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if host.ShouldStop() {
			return nil
		}
		l.Advance(host.FrameTime())
		l.Render(s)
		host.Present()
	}
}
