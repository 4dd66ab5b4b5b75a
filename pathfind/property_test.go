package pathfind_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// arc is a weighted transition between two states.
type arc struct {
	to   pathfind.State
	cost int64
}

// plainDijkstra is an O(S²) reference without heaps or tie handling:
// it returns the minimum cost of every state reachable from sources.
func plainDijkstra(sources []pathfind.State, next func(pathfind.State) []arc) map[pathfind.State]int64 {
	dist := make(map[pathfind.State]int64)
	done := make(map[pathfind.State]bool)
	for _, s := range sources {
		dist[s] = 0
	}
	for {
		var u pathfind.State
		best := int64(-1)
		for s, d := range dist {
			if !done[s] && (best < 0 || d < best) {
				u, best = s, d
			}
		}
		if best < 0 {
			return dist
		}
		done[u] = true
		for _, a := range next(u) {
			nd := best + a.cost
			if old, ok := dist[a.to]; !ok || nd < old {
				dist[a.to] = nd
			}
		}
	}
}

// referenceCells computes the optimal cost and cells independently:
// a state lies on an optimal path iff fwd(s) + bwd(s) == min.
func referenceCells(g *grid.Grid, step, turn int64) (int64, map[grid.Position]bool, bool) {
	forward := func(s pathfind.State) []arc {
		out := make([]arc, 0, 3)
		if n := s.Pos.Step(s.Dir); g.IsPassable(n) {
			out = append(out, arc{pathfind.State{Pos: n, Dir: s.Dir}, step})
		}
		for _, d := range s.Dir.Turns() {
			out = append(out, arc{pathfind.State{Pos: s.Pos, Dir: d}, turn})
		}
		return out
	}
	backward := func(s pathfind.State) []arc {
		out := make([]arc, 0, 3)
		if p := s.Pos.Step(s.Dir.Opposite()); g.IsPassable(p) {
			out = append(out, arc{pathfind.State{Pos: p, Dir: s.Dir}, step})
		}
		for _, d := range s.Dir.Turns() {
			out = append(out, arc{pathfind.State{Pos: s.Pos, Dir: d}, turn})
		}
		return out
	}

	fwd := plainDijkstra([]pathfind.State{{Pos: g.Start(), Dir: grid.Right}}, forward)
	ends := make([]pathfind.State, 0, 4)
	for _, d := range grid.Directions {
		ends = append(ends, pathfind.State{Pos: g.End(), Dir: d})
	}
	bwd := plainDijkstra(ends, backward)

	min, found := int64(-1), false
	for _, e := range ends {
		if c, ok := fwd[e]; ok && (!found || c < min) {
			min, found = c, true
		}
	}
	if !found {
		return 0, nil, false
	}
	cells := make(map[grid.Position]bool)
	for s, f := range fwd {
		if b, ok := bwd[s]; ok && f+b == min {
			cells[s.Pos] = true
		}
	}
	return min, cells, true
}

// randomGrid fills a size×size grid with ~density walls, keeping the
// bottom-left start and top-right end open.
func randomGrid(t *testing.T, r *rand.Rand, size int, density float64) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Kind, size)
	for y := range cells {
		cells[y] = make([]grid.Kind, size)
		for x := range cells[y] {
			if r.Float64() >= density {
				cells[y][x] = grid.Passable
			}
		}
	}
	start := grid.Position{Row: size - 1, Col: 0}
	end := grid.Position{Row: 0, Col: size - 1}
	cells[start.Row][start.Col] = grid.Passable
	cells[end.Row][end.Col] = grid.Passable
	g, err := grid.New(cells, start, end)
	require.NoError(t, err)
	return g
}

// TestMatchesReference compares Search with the forward/backward reference
// on random grids under several cost models, including tie-heavy ones.
func TestMatchesReference(t *testing.T) {
	costs := []struct{ step, turn int64 }{
		{1, 1000},
		{1, 1},
		{1, 0},
		{2, 3},
	}
	r := rand.New(rand.NewSource(16))
	for i := 0; i < 40; i++ {
		g := randomGrid(t, r, 8, 0.3)
		for _, c := range costs {
			t.Run(fmt.Sprintf("grid%d/step%d-turn%d", i, c.step, c.turn), func(t *testing.T) {
				res, err := pathfind.Search(g, pathfind.WithStepCost(c.step), pathfind.WithTurnCost(c.turn))
				require.NoError(t, err)

				min, cells, found := referenceCells(g, c.step, c.turn)
				require.Equal(t, found, res.Found, "\n%s", g)
				if !found {
					return
				}
				require.Equal(t, min, res.MinCost, "\n%s", g)
				require.Equal(t, len(cells), res.OptimalCells.Size(), "\n%s", g)
				for p := range cells {
					require.True(t, res.OptimalCells.Has(p), "missing %v\n%s", p, g)
				}

				// Route replays to the minimum, in full and in cost-only mode.
				total, err := replayRoute(g, res.Route(), c.step, c.turn)
				require.NoError(t, err, "\n%s", g)
				require.Equal(t, min, total, "\n%s", g)

				fast, err := pathfind.Search(g, pathfind.WithStepCost(c.step), pathfind.WithTurnCost(c.turn), pathfind.WithCostOnly())
				require.NoError(t, err)
				require.Equal(t, min, fast.MinCost, "\n%s", g)
				total, err = replayRoute(g, fast.Route(), c.step, c.turn)
				require.NoError(t, err, "\n%s", g)
				require.Equal(t, min, total, "\n%s", g)
			})
		}
	}
}
