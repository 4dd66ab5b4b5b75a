// Package grid provides the immutable maze model consumed by pathfind.
//
// Cells are either Blocked or Passable. Lookups outside the grid fail closed:
// IsPassable reports false and no coordinate ever wraps around.
package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cell kinds
// and the designated start and end cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and the Start/End errors
// if a marker is out of bounds or blocked.
// Algorithmic complexity: O(W×H) time and memory.
func New(cells [][]Kind, start, end Position) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Flatten to row-major storage
	flat := make([]Kind, 0, w*h)
	for _, row := range cells {
		flat = append(flat, row...)
	}
	g := &Grid{width: w, height: h, cells: flat, start: start, end: end}
	if err := g.validateMarkers(); err != nil {
		return nil, err
	}

	return g, nil
}

// FromBlocked constructs a width×height grid where every cell is passable
// except the listed blocked positions. Duplicates in blocked are allowed.
// Returns ErrBlockedOutOfBounds for a blocked cell outside the grid.
func FromBlocked(width, height int, blocked []Position, start, end Position) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	flat := make([]Kind, width*height)
	for i := range flat {
		flat[i] = Passable
	}
	g := &Grid{width: width, height: height, cells: flat, start: start, end: end}
	for _, p := range blocked {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlockedOutOfBounds, p)
		}
		g.cells[g.index(p)] = Blocked
	}
	if err := g.validateMarkers(); err != nil {
		return nil, err
	}

	return g, nil
}

// validateMarkers checks the start and end invariants.
func (g *Grid) validateMarkers() error {
	switch {
	case !g.InBounds(g.start):
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, g.start)
	case !g.InBounds(g.end):
		return fmt.Errorf("%w: %v", ErrEndOutOfBounds, g.end)
	case g.cells[g.index(g.start)] != Passable:
		return fmt.Errorf("%w: %v", ErrStartBlocked, g.start)
	case g.cells[g.index(g.end)] != Passable:
		return fmt.Errorf("%w: %v", ErrEndBlocked, g.end)
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the designated start cell.
func (g *Grid) Start() Position { return g.start }

// End returns the designated end cell.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Kind returns the kind of the cell at p. Out-of-bounds cells are Blocked.
func (g *Grid) Kind(p Position) Kind {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.cells[g.index(p)]
}

// IsPassable reports whether p is inside the grid and not blocked.
// Complexity: O(1).
func (g *Grid) IsPassable(p Position) bool {
	return g.Kind(p) == Passable
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, k := range g.cells {
		if k == Passable {
			n++
		}
	}
	return n
}

// String renders g in the text-maze format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			p := Position{Row: r, Col: c}
			switch p {
			case g.start:
				sb.WriteByte(markStart)
			case g.end:
				sb.WriteByte(markEnd)
			default:
				sb.WriteString(g.cells[g.index(p)].String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.width + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}
