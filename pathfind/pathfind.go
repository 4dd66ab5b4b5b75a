// Package pathfind implements a Dijkstra-style search over (cell, facing)
// states of a grid.Grid, computing the minimum cost from the start cell to
// the end cell together with every cell lying on at least one optimal path.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4 × passable cells.
//   - Each state is finalized at most once; each finalization pushes at
//     most three frontier entries (forward plus two turns).
//   - Space: O(S) for the BestCostTable and the frontier.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     resolving them on pop against the BestCostTable.
//   - Equal-cost pops of a finalized state are merged as extra predecessors and
//     never re-expanded.
//   - End-cell states are finalized but not expanded.
//   - Draining stops once the popped cost exceeds the best end cost, so every
//     equal-cost arrival at the end, in any facing, is collected.
package pathfind

import (
	"container/heap"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
)

// Search computes the minimum cost from g.Start(), facing Options.Heading,
// to any facing at g.End(), and the set of cells on every optimal path.
//
// Returns:
//
//   - res: always non-nil on success. res.Found is false when the end cell is
//     unreachable; this is a valid outcome, not an error.
//   - err: ErrNilGrid, or ErrOptionViolation for invalid options.
//
// Each call owns its frontier and BestCostTable, so concurrent calls on the
// same immutable grid are safe.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Prepare per-search state. Four facings per passable cell bound the table.
	hint := 4 * g.PassableCount()
	r := &runner{
		g:     g,
		opts:  cfg,
		table: newBestCostTable(hint),
		pq:    make(statePQ, 0, hint),
		best:  Unreachable,
	}

	// 3) Run and extract.
	r.init()
	r.process()
	res := r.result()

	cfg.Logger.WithFields(logrus.Fields{
		"found":     res.Found,
		"min_cost":  res.MinCost,
		"cells":     res.OptimalCells.Size(),
		"finalized": res.Stats.Finalized,
		"merged":    res.Stats.Merged,
		"pushed":    res.Stats.Pushed,
		"stale":     res.Stats.Stale,
	}).Debug("pathfind: search complete")

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g     *grid.Grid     // The input grid; read-only within Search.
	opts  Options        // Configuration options.
	table *BestCostTable // Finalized costs and predecessor links.
	pq    statePQ        // Min-heap frontier.
	found bool           // Whether any end state was finalized.
	best  int64          // Cost of the first finalized end state.
	stats Stats
}

// init pushes the start state with cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(State{Pos: r.g.Start(), Dir: r.opts.Heading}, 0, State{}, false)
}

// process is the core loop. It pops states in non-decreasing cost order.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The popped cost exceeds the best end cost.
//   - CostOnly is set and an end state has been finalized.
func (r *runner) process() {
	end := r.g.End()
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(frontierItem)
		if r.found && (r.opts.CostOnly || it.cost > r.best) {
			break
		}

		// 1) Finalized before: stale if costlier, a second optimal route if equal.
		if rec, ok := r.table.records[it.state]; ok {
			if it.cost > rec.cost {
				r.stats.Stale++
				continue
			}
			if it.hasFrom && rec.merge(it.from) {
				r.stats.Merged++
			}
			continue
		}

		// 2) First pop: the cost is final.
		r.table.finalize(it.state, it.cost, it.from, it.hasFrom)
		r.stats.Finalized++
		r.opts.OnFinalize(it.state, it.cost)

		if it.state.Pos == end {
			if !r.found {
				r.found, r.best = true, it.cost
			}
			continue
		}

		// 3) Expand.
		r.expand(it.state, it.cost)
	}
}

// expand schedules the forward step, if passable, and both 90° turns.
func (r *runner) expand(s State, cost int64) {
	if next := s.Pos.Step(s.Dir); r.g.IsPassable(next) {
		r.push(State{Pos: next, Dir: s.Dir}, cost+r.opts.StepCost, s, true)
	}
	for _, d := range s.Dir.Turns() {
		r.push(State{Pos: s.Pos, Dir: d}, cost+r.opts.TurnCost, s, true)
	}
}

// push adds a frontier entry unless it exceeds MaxCost or the target is
// already finalized at a strictly lower cost.
func (r *runner) push(s State, cost int64, from State, hasFrom bool) {
	if cost > r.opts.MaxCost {
		return
	}
	if rec, ok := r.table.records[s]; ok && rec.cost < cost {
		return
	}
	heap.Push(&r.pq, frontierItem{state: s, cost: cost, from: from, hasFrom: hasFrom})
	r.stats.Pushed++
}

// result extracts MinCost, the optimal end states, and their path-set.
func (r *runner) result() *Result {
	res := &Result{
		Found:   r.found,
		MinCost: Unreachable,
		Table:   r.table,
		Stats:   r.stats,
	}
	if !r.found {
		res.OptimalCells = r.table.PathCells()
		return res
	}
	res.MinCost = r.best
	end := r.g.End()
	for _, d := range grid.Directions {
		s := State{Pos: end, Dir: d}
		if c, ok := r.table.Cost(s); ok && c == r.best {
			res.EndStates = append(res.EndStates, s)
		}
	}
	if r.opts.CostOnly {
		res.OptimalCells = r.table.PathCells(res.Route()...)
		return res
	}
	res.OptimalCells = r.table.PathCells(res.EndStates...)

	return res
}

// Cells returns the optimal cells sorted row-major.
func (res *Result) Cells() []grid.Position {
	if res.OptimalCells.Size() == 0 {
		return nil
	}
	out := make([]grid.Position, 0, res.OptimalCells.Size())
	res.OptimalCells.Each(func(p grid.Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b grid.Position) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Route returns one concrete optimal state sequence from the start state to
// the first optimal end state, turns included. Nil if no path was found.
func (res *Result) Route() []State {
	if !res.Found || len(res.EndStates) == 0 {
		return nil
	}
	return res.Table.route(res.EndStates[0])
}

// Err returns ErrNoPath when the end cell was not reached, nil otherwise.
func (res *Result) Err() error {
	if !res.Found {
		return ErrNoPath
	}
	return nil
}

// frontierItem is a scheduled arrival at a state with its accumulated cost
// and the state it came from.
type frontierItem struct {
	state   State
	cost    int64
	from    State
	hasFrom bool
}

// statePQ is a min-heap of frontierItem ordered by cost ascending.
// Outdated entries remain and are resolved when popped.
type statePQ []frontierItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
