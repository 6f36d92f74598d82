package life

import (
	"errors"
	"testing"

	"lifeloop/internal/core"
	"lifeloop/internal/pattern"
)

// ring lists the Moore neighborhood offsets in a fixed order.
var ring = []core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

func gridWithNeighbors(centerAlive bool, k int) *core.Grid {
	g := core.MustGrid(5, 5)
	g.Set(2, 2, centerAlive)
	for _, off := range ring[:k] {
		g.Set(2+off.X, 2+off.Y, true)
	}
	return g
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantLive := n == 2 || n == 3
		if got := Rule(true, n); got != wantLive {
			t.Errorf("Rule(alive, %d) = %v, expected %v", n, got, wantLive)
		}
		wantBorn := n == 3
		if got := Rule(false, n); got != wantBorn {
			t.Errorf("Rule(dead, %d) = %v, expected %v", n, got, wantBorn)
		}
	}
}

func TestLiveCellSurvival(t *testing.T) {
	cases := []struct {
		neighbors int
		survives  bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{8, false},
	}
	for _, tc := range cases {
		g := gridWithNeighbors(true, tc.neighbors)
		if n := Neighbors(g, 2, 2, EdgeBounded); n != tc.neighbors {
			t.Fatalf("Neighbors = %d, expected %d", n, tc.neighbors)
		}
		if got := Next(g).Alive(2, 2); got != tc.survives {
			t.Errorf("live cell with %d neighbors alive=%v, expected %v", tc.neighbors, got, tc.survives)
		}
	}
}

func TestDeadCellBirth(t *testing.T) {
	for k := 0; k <= 8; k++ {
		g := gridWithNeighbors(false, k)
		want := k == 3
		if got := Next(g).Alive(2, 2); got != want {
			t.Errorf("dead cell with %d neighbors alive=%v, expected %v", k, got, want)
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, edge := range []Edge{EdgeBounded, EdgeToroidal} {
		g := core.MustGrid(9, 7)
		if pop := NextWithEdge(g, edge).Population(); pop != 0 {
			t.Fatalf("%v: empty grid produced %d live cells", edge, pop)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := core.MustGrid(7, 7)
	g.Set(3, 3, true)
	if pop := Next(g).Population(); pop != 0 {
		t.Fatalf("isolated cell left %d live cells", pop)
	}
}

func TestCornerNeverCountsWrappedNeighbors(t *testing.T) {
	g := core.MustGrid(5, 5)
	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		g.Set(p.X, p.Y, true)
	}
	// Cells that would be neighbors of (0,0) under wraparound.
	for _, p := range []core.Point{{X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 1}, {X: 1, Y: 4}} {
		g.Set(p.X, p.Y, true)
	}
	if n := Neighbors(g, 0, 0, EdgeBounded); n != 3 {
		t.Fatalf("bounded corner neighbors = %d, expected 3", n)
	}
	if n := Neighbors(g, 0, 0, EdgeToroidal); n != 8 {
		t.Fatalf("toroidal corner neighbors = %d, expected 8", n)
	}
}

func TestFullGridCorners(t *testing.T) {
	g := core.MustGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = true
	}
	next := Next(g)
	// Corners have 3 neighbors, edges 5, center 8.
	want := [3][3]bool{
		{true, false, true},
		{false, false, false},
		{true, false, true},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if next.Alive(x, y) != want[y][x] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, next.Alive(x, y), want[y][x])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := core.MustGrid(5, 5)
	if err := pattern.Stamp(g, pattern.Blinker, core.Point{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	start := g.Clone()

	g = Next(g)
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	g = Next(g)
	if !g.Equal(start) {
		t.Fatalf("after second step blinker did not return: %v", g.LiveCells())
	}
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	g := core.MustGrid(10, 10)
	anchor := core.Point{X: 2, Y: 1}
	if err := pattern.Stamp(g, pattern.Glider, anchor); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		g = Next(g)
	}
	want := core.MustGrid(10, 10)
	if err := pattern.Stamp(want, pattern.Glider, anchor.Add(core.Point{X: 1, Y: 1})); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(want) {
		t.Fatalf("glider after 4 generations = %v, expected %v", g.LiveCells(), want.LiveCells())
	}
}

func TestToroidalGliderWrapsHome(t *testing.T) {
	g := core.MustGrid(6, 6)
	if err := pattern.Stamp(g, pattern.Glider, core.Point{X: 1, Y: 0}); err != nil {
		t.Fatal(err)
	}
	start := g.Clone()
	for i := 0; i < 24; i++ {
		g = NextWithEdge(g, EdgeToroidal)
	}
	if !g.Equal(start) {
		t.Fatalf("toroidal glider after 24 generations = %v, expected %v", g.LiveCells(), start.LiveCells())
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := core.MustGrid(8, 8)
	if err := pattern.Stamp(g, pattern.Glider, core.Point{X: 3, Y: 2}); err != nil {
		t.Fatal(err)
	}
	before := g.Clone()
	out := Next(g)
	if !g.Equal(before) {
		t.Fatal("Next mutated its input grid")
	}
	if out == g {
		t.Fatal("Next returned its input grid")
	}
}

func TestNextGenerationRejectsAliasing(t *testing.T) {
	g := core.MustGrid(4, 4)
	if err := NextGeneration(g, g, EdgeBounded); !errors.Is(err, ErrAliased) {
		t.Fatalf("err = %v, expected ErrAliased", err)
	}
	if err := NextGeneration(g, core.MustGrid(4, 5), EdgeBounded); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestParseEdge(t *testing.T) {
	cases := map[string]Edge{
		"":         EdgeBounded,
		"bounded":  EdgeBounded,
		"Toroidal": EdgeToroidal,
		"wrap":     EdgeToroidal,
	}
	for in, want := range cases {
		got, err := ParseEdge(in)
		if err != nil || got != want {
			t.Errorf("ParseEdge(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}
	if _, err := ParseEdge("mobius"); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("err = %v, expected ErrInvalidConfig", err)
	}
}
