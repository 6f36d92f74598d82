package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"lifeloop/internal/core"
	"lifeloop/internal/life"
	"lifeloop/internal/pattern"
)

type scenario struct {
	size    int
	pattern string
	edge    life.Edge
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d %s %s", s.size, s.size, s.pattern, s.edge)
}

type scenarioResult struct {
	scenario    scenario
	steps       int
	elapsed     time.Duration
	population  int
	peak        int
	stableAfter int
}

func (r scenarioResult) rate() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.steps) / r.elapsed.Seconds()
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "random seed for soup scenarios")
	flag.Parse()

	if *steps <= 0 || *workers <= 0 {
		log.Fatalf("steps and workers must be positive (steps=%d workers=%d)", *steps, *workers)
	}

	var scenarios []scenario
	for _, size := range []int{64, 128, 256} {
		for _, name := range []string{"glider", "lwss", "beacon", pattern.SoupName} {
			for _, edge := range []life.Edge{life.EdgeBounded, life.EdgeToroidal} {
				scenarios = append(scenarios, scenario{size: size, pattern: name, edge: edge})
			}
		}
	}

	fmt.Printf("Running %d scenarios (%d workers, %d steps)\n", len(scenarios), *workers, *steps)

	results := make([]scenarioResult, len(scenarios))
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(sc, *steps, *seed)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].rate() > results[j].rate() })
	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range results {
		stable := "-"
		if res.stableAfter >= 0 {
			stable = fmt.Sprint(res.stableAfter)
		}
		fmt.Printf("%2d) %-28s %10.0f gen/s  pop=%d peak=%d stable=%s\n",
			i+1, res.scenario, res.rate(), res.population, res.peak, stable)
	}
}

// runScenario seeds a fresh simulation and steps it, tracking population and
// the first generation after which the grid stopped changing.
func runScenario(sc scenario, steps int, seed int64) (scenarioResult, error) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = sc.size, sc.size
	cfg.Edge = sc.edge
	cfg.Pattern = sc.pattern
	cfg.Seed = seed
	cfg.Anchor = core.Point{X: sc.size / 2, Y: sc.size / 2}

	sim, err := life.New(cfg)
	if err != nil {
		return scenarioResult{}, err
	}

	res := scenarioResult{scenario: sc, steps: steps, stableAfter: -1, peak: sim.Grid().Population()}
	prev := sim.Grid().Clone()
	began := time.Now()
	for step := 1; step <= steps; step++ {
		sim.Step()
		cur := sim.Grid()
		res.peak = max(res.peak, cur.Population())
		if res.stableAfter < 0 && cur.Equal(prev) {
			res.stableAfter = step - 1
		}
		if err := prev.CopyFrom(cur); err != nil {
			return scenarioResult{}, err
		}
	}
	res.elapsed = time.Since(began)
	res.population = sim.Grid().Population()
	return res, nil
}
