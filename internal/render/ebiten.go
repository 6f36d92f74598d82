//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image, typically the screen passed to Draw.
type EbitenSurface struct {
	Dst *ebiten.Image
}

// Fill paints the whole image.
func (s EbitenSurface) Fill(c color.Color) { s.Dst.Fill(c) }

// FillRect paints one filled rectangle.
func (s EbitenSurface) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.Dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
