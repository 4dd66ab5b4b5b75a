package pathfind_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// smallMaze is the 15×15 reindeer maze: 7036 with 45 optimal cells.
const smallMaze = `
###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// largeMaze is the 17×17 reindeer maze: 11048 with 64 optimal cells.
const largeMaze = `
#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// endDetours offers two mirror-image routes that reach E in opposite facings.
const endDetours = `
#######
#.....#
#S###E#
#.....#
#######
`

// joinDetours offers two mirror-image routes that meet at (2,5) and share
// the final approach to E.
const joinDetours = `
#########
#.....###
#S###..E#
#.....###
#########
`

// lCorridor builds a single corridor with one right-then-up bend:
// `run` cells to the right of S along the bottom row, then `rise` cells up to E.
func lCorridor(t testing.TB, run, rise int) *grid.Grid {
	t.Helper()
	h, w := rise+2, run+2
	cells := make([][]grid.Kind, h)
	for r := range cells {
		cells[r] = make([]grid.Kind, w)
	}
	bottom := h - 1
	for c := 0; c <= run; c++ {
		cells[bottom][c] = grid.Passable
	}
	for r := bottom - rise; r <= bottom; r++ {
		cells[r][run] = grid.Passable
	}
	g, err := grid.New(cells,
		grid.Position{Row: bottom, Col: 0},
		grid.Position{Row: bottom - rise, Col: run})
	require.NoError(t, err)
	return g
}

// replayRoute checks every transition of route against g and returns the
// accumulated cost. The route must start at g's start and visit no state twice.
func replayRoute(g *grid.Grid, route []pathfind.State, step, turn int64) (int64, error) {
	if len(route) == 0 || route[0].Pos != g.Start() {
		return 0, fmt.Errorf("route does not begin at %v", g.Start())
	}
	seen := make(map[pathfind.State]bool, len(route))
	var total int64
	for i, cur := range route {
		if seen[cur] {
			return 0, fmt.Errorf("state %v repeated at %d", cur, i)
		}
		seen[cur] = true
		if i == 0 {
			continue
		}
		prev := route[i-1]
		switch {
		case cur.Pos == prev.Pos.Step(prev.Dir) && cur.Dir == prev.Dir && g.IsPassable(cur.Pos):
			total += step
		case cur.Pos == prev.Pos && (cur.Dir == prev.Dir.Clockwise() || cur.Dir == prev.Dir.CounterClockwise()):
			total += turn
		default:
			return 0, fmt.Errorf("illegal transition %v -> %v", prev, cur)
		}
	}
	return total, nil
}

// searchWithin runs Search and Route in the background and fails the test
// if they do not return within d.
func searchWithin(t testing.TB, d time.Duration, g *grid.Grid, opts ...pathfind.Option) (*pathfind.Result, []pathfind.State) {
	t.Helper()
	type outcome struct {
		res   *pathfind.Result
		route []pathfind.State
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := pathfind.Search(g, opts...)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		done <- outcome{res: res, route: res.Route()}
	}()
	select {
	case o := <-done:
		require.NoError(t, o.err)
		return o.res, o.route
	case <-time.After(d):
		require.FailNow(t, "search did not finish", "after %v", d)
		return nil, nil
	}
}
