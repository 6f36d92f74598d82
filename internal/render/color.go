package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"lifeloop/internal/core"
)

var named = map[string]color.RGBA{
	"white": {R: 255, G: 255, B: 255, A: 255},
	"black": {R: 0, G: 0, B: 0, A: 255},
	"gray":  {R: 130, G: 130, B: 130, A: 255},
	"grey":  {R: 130, G: 130, B: 130, A: 255},
	"red":   {R: 230, G: 41, B: 55, A: 255},
	"green": {R: 0, G: 228, B: 48, A: 255},
	"blue":  {R: 0, G: 121, B: 241, A: 255},
}

// ParseColor accepts the palette names above, any color name or "#rrggbb"
// value known to tcell, and "#rrggbbaa" for translucent colors.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 8 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: color %q: %v", core.ErrInvalidConfig, s, err)
		}
		return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	if len(hex) == 6 {
		s = "#" + hex
	}
	tc := tcell.GetColor(s)
	if !tc.Valid() {
		return color.RGBA{}, fmt.Errorf("%w: color %q", core.ErrInvalidConfig, s)
	}
	r, g, b := tc.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when not opaque.
func FormatColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a>>8 == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}
