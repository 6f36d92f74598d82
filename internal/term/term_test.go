package term

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeloop/internal/engine"
	"lifeloop/internal/life"
	"lifeloop/internal/render"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func newLoop(t *testing.T) *engine.Loop {
	t.Helper()
	sim, err := life.New(life.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	sched, err := engine.NewScheduler(sim, 2)
	if err != nil {
		t.Fatal(err)
	}
	loop, err := engine.NewLoop(sched, render.Layout{CellSize: 30, Padding: 2}, render.DefaultPalette())
	if err != nil {
		t.Fatal(err)
	}
	return loop
}

func background(s tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestSurfaceDoublesColumns(t *testing.T) {
	s := newScreen(t, 10, 4)
	defer s.Fini()
	surf := Surface{Screen: s}
	red := color.RGBA{R: 255, A: 255}
	surf.Fill(color.Black)
	surf.FillRect(1, 1, 2, 1, red)

	want := tcell.NewRGBColor(255, 0, 0)
	for col := 2; col < 6; col++ {
		if got := background(s, col, 1); got != want {
			t.Fatalf("column %d background = %v, expected %v", col, got, want)
		}
	}
	for _, col := range []int{1, 6} {
		if got := background(s, col, 1); got == want {
			t.Fatalf("column %d should not be painted", col)
		}
	}
	if got := background(s, 2, 0); got == want {
		t.Fatal("row 0 should not be painted")
	}
}

func TestDrawGridOnTerminal(t *testing.T) {
	s := newScreen(t, 40, 20)
	defer s.Fini()
	loop := newLoop(t)
	termLoop, err := engine.NewLoop(loop.Scheduler(), Layout, loop.Palette())
	if err != nil {
		t.Fatal(err)
	}
	termLoop.Render(Surface{Screen: s})

	on := tcell.NewRGBColor(255, 255, 255)
	// Default glider anchor (1,0): the top cell sits at grid (1,0).
	if got := background(s, 2, 0); got != on {
		t.Fatalf("glider head background = %v, expected white", got)
	}
	if got := background(s, 0, 0); got == on {
		t.Fatal("dead cell drawn with live color")
	}
}

func TestHandleKeys(t *testing.T) {
	s := newScreen(t, 40, 20)
	defer s.Fini()
	loop := newLoop(t)
	h, err := NewHost(s, loop, 60, 1)
	if err != nil {
		t.Fatal(err)
	}

	h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if h.ShouldStop() {
		t.Fatal("space should not stop")
	}
	if !loop.Scheduler().Paused() {
		t.Fatal("space should pause the scheduler")
	}

	h.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	h.ShouldStop()
	if n := loop.Advance(time.Second); n != 1 {
		t.Fatalf("step-once ran %d ticks, expected 1", n)
	}

	h.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	h.ShouldStop()
	if g := loop.Scheduler().Sim().Generation(); g != 0 {
		t.Fatalf("generation after reset = %d, expected 0", g)
	}

	h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !h.ShouldStop() {
		t.Fatal("escape should stop")
	}
}

func TestNewHostRejectsFPS(t *testing.T) {
	if _, err := NewHost(nil, nil, 0, 0); err == nil {
		t.Fatal("expected error for zero fps")
	}
}

func TestRunOnStopsOnQuit(t *testing.T) {
	s := newScreen(t, 40, 24)
	loop := newLoop(t)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- RunOn(context.Background(), s, loop, 200, 1) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunOn: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunOn did not return after quit key")
	}
}

func TestRunOnHonoursContext(t *testing.T) {
	s := newScreen(t, 40, 24)
	loop := newLoop(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := RunOn(ctx, s, loop, 200, 1)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunOn err = %v, expected deadline exceeded", err)
	}
}
