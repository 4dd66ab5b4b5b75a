package grid

// Components finds all orthogonally connected regions of passable cells.
// Each region lists its positions in breadth-first order from its
// row-major first cell; regions are ordered by that first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	for i, k := range g.cells {
		if k != Passable || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}
	return comps
}

// Connected reports whether b can be reached from a through passable cells,
// ignoring heading and costs.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	seen := make([]bool, len(g.cells))
	for _, p := range g.flood(g.index(a), seen) {
		if p == b {
			return true
		}
	}
	return false
}

// flood collects the region containing cell index i0, marking it in seen.
func (g *Grid) flood(i0 int, seen []bool) []Position {
	queue := []int{i0}
	seen[i0] = true
	var comp []Position
	for qi := 0; qi < len(queue); qi++ {
		p := g.Position(queue[qi])
		comp = append(comp, p)
		for _, d := range Directions {
			q := p.Step(d)
			if !g.IsPassable(q) {
				continue
			}
			if vi := g.index(q); !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return comp
}
