package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// record is the finalized cost of one state, the predecessor it was first
// reached from, and any later predecessors reaching it at the same cost.
// The start state has no parent and takes no ties.
type record struct {
	cost      int64
	parent    State
	hasParent bool
	ties      []State
}

// each calls fn for the parent and every tie.
func (rec *record) each(fn func(State)) {
	if rec.hasParent {
		fn(rec.parent)
	}
	for _, p := range rec.ties {
		fn(p)
	}
}

// BestCostTable maps each finalized State to its minimum cost and to the
// set of cells on every path achieving it.
//
// A state's cost never improves after finalization, but equal-cost
// arrivals keep being merged in. The path-set is kept as predecessor links
// and unioned on demand, so a tie found after the state's successors were
// scheduled still reaches every descendant's path-set.
type BestCostTable struct {
	records map[State]*record
}

func newBestCostTable(hint int) *BestCostTable {
	return &BestCostTable{records: make(map[State]*record, hint)}
}

// Cost returns the finalized cost of s, or false if s was never reached.
func (t *BestCostTable) Cost(s State) (int64, bool) {
	rec, ok := t.records[s]
	if !ok {
		return 0, false
	}
	return rec.cost, true
}

// Len returns the number of finalized states.
func (t *BestCostTable) Len() int { return len(t.records) }

// Predecessors returns a copy of the states that reach s at its optimal cost.
// The start state has none.
func (t *BestCostTable) Predecessors(s State) []State {
	rec, ok := t.records[s]
	if !ok {
		return nil
	}
	var out []State
	rec.each(func(p State) { out = append(out, p) })
	return out
}

// merge adds from as an equal-cost predecessor of rec. It reports false
// for the start state and for a repeat of the parent.
func (rec *record) merge(from State) bool {
	if !rec.hasParent || rec.parent == from {
		return false
	}
	rec.ties = append(rec.ties, from)
	return true
}

// finalize records cost for s with an optional first predecessor.
func (t *BestCostTable) finalize(s State, cost int64, from State, hasFrom bool) {
	t.records[s] = &record{cost: cost, parent: from, hasParent: hasFrom}
}

// PathCells returns the union of cells over every optimal path reaching
// any of the given states. Unknown states contribute nothing.
// Complexity: O(S + P) over the reachable predecessor DAG.
func (t *BestCostTable) PathCells(states ...State) mapset.Set[grid.Position] {
	cells := mapset.New[grid.Position]()
	seen := mapset.New[State]()
	stack := make([]State, 0, len(states))
	for _, s := range states {
		if _, ok := t.records[s]; ok && !seen.Has(s) {
			seen.Put(s)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells.Put(s.Pos)
		t.records[s].each(func(p State) {
			if !seen.Has(p) {
				seen.Put(p)
				stack = append(stack, p)
			}
		})
	}
	return cells
}

// route follows parents back from s and returns the states in start-to-s
// order. A parent is finalized before its child and ties are never
// followed, so the walk ends at the start state even with zero-cost turns.
func (t *BestCostTable) route(s State) []State {
	var path []State
	for {
		rec, ok := t.records[s]
		if !ok {
			return nil
		}
		path = append(path, s)
		if !rec.hasParent {
			break
		}
		s = rec.parent
	}
	// Reverse.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
