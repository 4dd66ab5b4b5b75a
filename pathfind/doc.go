// Package pathfind finds minimum-cost routes through a grid.Grid where the
// traveller has a facing: moving forward costs one unit, turning 90° in place
// costs a thousand, and every route achieving the minimum is kept.
//
// Overview:
//
//   - The search runs over (cell, facing) states with a min-heap frontier.
//   - Each state's minimum cost is final on first pop; later pops at the same
//     cost are merged as alternate predecessors instead of being dropped.
//   - Result.OptimalCells is the union of cells over all optimal routes, in
//     every facing that reaches the end at the minimum cost.
//
// When to use:
//
//   - Reindeer-style mazes where turning is expensive.
//   - Plain shortest-step searches (WithTurnCost(0)), e.g. corrupted memory grids.
//   - Any question of the form "which cells lie on some best route?".
//
// Example usage:
//
//	g, err := grid.Parse(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := pathfind.Search(g, pathfind.WithHeading(grid.Right))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	    return
//	}
//	fmt.Println(res.MinCost, res.OptimalCells.Size())
//
// Thread safety:
//
//   - Search holds no global state. Concurrent calls on the same *grid.Grid
//     are safe because grids are immutable.
//   - A Result and its BestCostTable must not be shared with writers; they
//     are never written after Search returns.
package pathfind
