// Package term runs the simulation in a terminal through tcell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"lifeloop/internal/render"
)

// Layout draws one grid cell as a single surface unit with no padding.
var Layout = render.Layout{CellSize: 1, Padding: 0}

// Surface draws onto a tcell screen. One surface unit is two terminal
// columns wide so cells look roughly square.
type Surface struct {
	Screen tcell.Screen
}

// Fill paints the whole screen.
func (s Surface) Fill(c color.Color) {
	s.Screen.Fill(' ', styleFor(c))
}

// FillRect paints a w*h block of units with its top-left corner at (x, y).
func (s Surface) FillRect(x, y, w, h int, c color.Color) {
	style := styleFor(c)
	for row := y; row < y+h; row++ {
		for col := 2 * x; col < 2*(x+w); col++ {
			s.Screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func styleFor(c color.Color) tcell.Style {
	return tcell.StyleDefault.Background(toTcell(c))
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
