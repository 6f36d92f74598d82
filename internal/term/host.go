package term

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifeloop/internal/engine"
	"lifeloop/internal/ui"
)

type command int

const (
	cmdTogglePause command = iota
	cmdStepOnce
	cmdReset
	cmdReseed
	cmdSync
)

// Host implements engine.Host on a tcell screen. Input arrives on a poller
// goroutine that only sets the stop flag or queues commands; the commands are
// applied on the loop goroutine, so the simulation is never shared.
type Host struct {
	screen tcell.Screen
	loop   *engine.Loop
	frame  time.Duration
	seed   int64

	stop     atomic.Bool
	commands chan command
	last     time.Time
	ticker   *time.Ticker
}

// NewHost constructs a host presenting at fps frames per second.
func NewHost(screen tcell.Screen, loop *engine.Loop, fps int, seed int64) (*Host, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("terminal frame rate must be positive, got %d", fps)
	}
	return &Host{
		screen:   screen,
		loop:     loop,
		frame:    time.Second / time.Duration(fps),
		seed:     seed,
		commands: make(chan command, 16),
	}, nil
}

// FrameTime returns the real time since the previous call.
func (h *Host) FrameTime() time.Duration {
	now := time.Now()
	if h.last.IsZero() {
		h.last = now
	}
	elapsed := now.Sub(h.last)
	h.last = now
	return elapsed
}

// ShouldStop applies queued commands and reports the stop request.
func (h *Host) ShouldStop() bool {
	for {
		select {
		case cmd := <-h.commands:
			h.apply(cmd)
		default:
			return h.stop.Load()
		}
	}
}

func (h *Host) apply(cmd command) {
	sched := h.loop.Scheduler()
	switch cmd {
	case cmdTogglePause:
		sched.TogglePause()
	case cmdStepOnce:
		sched.StepOnce()
	case cmdReset:
		sched.Reset(h.seed)
	case cmdReseed:
		h.seed = time.Now().UnixNano()
		sched.Reset(h.seed)
	case cmdSync:
		h.screen.Sync()
	}
}

// Present draws the status lines below the grid, shows the frame and waits
// for the next frame slot.
func (h *Host) Present() {
	size := h.loop.Scheduler().Sim().Size()
	for i, line := range ui.Lines(h.loop) {
		h.drawText(0, size.H+1+i, line)
	}
	h.screen.Show()
	if h.ticker == nil {
		h.ticker = time.NewTicker(h.frame)
	}
	<-h.ticker.C
}

func (h *Host) drawText(x, y int, s string) {
	w, _ := h.screen.Size()
	for col := x; col < w; col++ {
		r := ' '
		if i := col - x; i < len(s) {
			r = rune(s[i])
		}
		h.screen.SetContent(col, y, r, nil, tcell.StyleDefault)
	}
}

// handle maps one input event onto the stop flag or a queued command.
func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			h.stop.Store(true)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				h.stop.Store(true)
			case ' ':
				h.enqueue(cmdTogglePause)
			case 'n', 'N':
				h.enqueue(cmdStepOnce)
			case 'r', 'R':
				h.enqueue(cmdReset)
			case 's', 'S':
				h.enqueue(cmdReseed)
			}
		}
	case *tcell.EventResize:
		h.enqueue(cmdSync)
	}
}

func (h *Host) enqueue(cmd command) {
	select {
	case h.commands <- cmd:
	default:
	}
}

func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.handle(ev)
	}
}

// Run opens the terminal and runs the loop until the user quits or ctx ends.
func Run(ctx context.Context, loop *engine.Loop, fps int, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	return RunOn(ctx, screen, loop, fps, seed)
}

// RunOn runs the loop on an initialized screen and finalizes it on return.
func RunOn(ctx context.Context, screen tcell.Screen, loop *engine.Loop, fps int, seed int64) error {
	termLoop, err := engine.NewLoop(loop.Scheduler(), Layout, loop.Palette())
	if err != nil {
		screen.Fini()
		return err
	}
	h, err := NewHost(screen, termLoop, fps, seed)
	if err != nil {
		screen.Fini()
		return err
	}
	defer func() {
		if h.ticker != nil {
			h.ticker.Stop()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h.poll()
		return nil
	})
	g.Go(func() error {
		// Fini unblocks PollEvent, which ends the poller.
		defer screen.Fini()
		return termLoop.Run(gctx, h, Surface{Screen: screen})
	})
	return g.Wait()
}
