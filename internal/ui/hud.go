//go:build ebiten

package ui

import (
	"image/color"

	"lifeloop/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
)

// HUD draws the simulation status in the top-left corner. H toggles it.
type HUD struct {
	loop  *engine.Loop
	show  bool
	lines []string
}

// NewHUD constructs a HUD for the provided loop.
func NewHUD(loop *engine.Loop) *HUD {
	return &HUD{loop: loop, show: true}
}

// Update refreshes the cached status lines and handles the toggle key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
	if h.show {
		h.lines = Lines(h.loop)
	}
}

// Draw paints the status panel over the grid.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.show || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range h.lines {
		width = max(width, len(l)*face.Advance)
	}
	height := len(h.lines)*lineHeight + panelPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height+panelPadding), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, l := range h.lines {
		text.Draw(screen, l, face, panelPadding, panelPadding+(i+1)*lineHeight-3, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
