package pattern

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"lifeloop/internal/core"
)

// SoupName selects random soup seeding instead of a named pattern.
const SoupName = "soup"

const (
	soupAlpha = 2.0
	soupBeta  = 2.0
	soupOct   = 3
	soupScale = 8.0
)

// Soup fills g with a clustered random population. Perlin noise biases the
// per-cell probability around density so live cells form patches rather than
// uniform static. The result depends only on seed, density and grid size.
// Existing live cells are kept.
func Soup(g *core.Grid, seed int64, density float64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return fmt.Errorf("%w: soup density %v outside [0,1]", core.ErrInvalidConfig, density)
	}
	if density == 0 {
		return nil
	}
	noise := perlin.NewPerlin(soupAlpha, soupBeta, soupOct, seed)
	rng := core.NewRNG(seed)
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			n := noise.Noise2D(float64(x)/soupScale, float64(y)/soupScale)
			p := density * (1 + n)
			if rng.Chance(p) {
				g.Set(x, y, true)
			}
		}
	}
	return nil
}
