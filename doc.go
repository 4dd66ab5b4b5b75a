// Package gridpath finds every cost-optimal route through a 2D grid where
// the walker has a heading, steps forward for a small cost and pays a
// much larger cost for each quarter turn.
//
// What is in the module?
//
//	grid/      : immutable Grid, Position, Direction, text maze parser,
//	             connected regions
//	pathfind/  : Dijkstra over (position, heading) states with equal-cost
//	             merging, BestCostTable and optimal cell-set extraction
//	bytefall/  : falling-byte corruption grids, step counts and the first
//	             byte that cuts the exit off
//	config/    : GRIDPATH_* environment and .env settings
//	cmd/gridpath: command line solver for maze and byte files
//
// Quick example:
//
//	#######
//	#.....#
//	#S###E#
//	#.....#
//	#######
//
// Starting east at S, both the upper and the lower corridor cost
// 6 steps + 3 turns = 3006, so Search reports MinCost 3006 and the
// 12 cells of both corridors.
//
//	g := grid.MustParse(maze)
//	res, err := pathfind.Search(g)
//	// res.MinCost == 3006, res.OptimalCells.Size() == 12
//
// Searches are single-threaded and own their tables; grids are safe to share,
// so independent searches can run in parallel.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
