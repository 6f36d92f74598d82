//go:build ebiten

package app

import (
	"time"

	"lifeloop/internal/engine"
	"lifeloop/internal/render"
	"lifeloop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an engine loop to the ebiten.Game interface. Update measures
// the frame time and runs due ticks; Draw renders the current generation.
type Game struct {
	loop *engine.Loop
	hud  *ui.HUD

	width, height int
	seed          int64
	last          time.Time
}

// New constructs a Game for the provided loop and window size.
func New(loop *engine.Loop, width, height int, seed int64) *Game {
	return &Game{
		loop:   loop,
		hud:    ui.NewHUD(loop),
		width:  width,
		height: height,
		seed:   seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.loop.Scheduler().Reset(seed)
}

// FrameTime returns the real time since the previous Update.
func (g *Game) FrameTime() time.Duration {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	elapsed := now.Sub(g.last)
	g.last = now
	return elapsed
}

// ShouldStop reports whether the user asked to quit.
func (g *Game) ShouldStop() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.ShouldStop() {
		return ebiten.Termination
	}
	sched := g.loop.Scheduler()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		sched.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		sched.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.hud.Update()

	g.loop.Advance(g.FrameTime())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Render(render.EbitenSurface{Dst: screen})
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
