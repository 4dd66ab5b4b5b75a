// Package grid defines core types and sentinel errors for the grid model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("grid: start position out of bounds")
	// ErrEndOutOfBounds indicates the end cell lies outside the grid.
	ErrEndOutOfBounds = errors.New("grid: end position out of bounds")
	// ErrStartBlocked indicates the start cell is not passable.
	ErrStartBlocked = errors.New("grid: start position is blocked")
	// ErrEndBlocked indicates the end cell is not passable.
	ErrEndBlocked = errors.New("grid: end position is blocked")
	// ErrBlockedOutOfBounds indicates a blocked cell outside the grid.
	ErrBlockedOutOfBounds = errors.New("grid: blocked position out of bounds")
	// ErrUnknownCell indicates an unrecognized character in a text maze.
	ErrUnknownCell = errors.New("grid: unknown cell character")
	// ErrNoStart indicates a text maze without an 'S' marker.
	ErrNoStart = errors.New("grid: no start marker")
	// ErrNoEnd indicates a text maze without an 'E' marker.
	ErrNoEnd = errors.New("grid: no end marker")
	// ErrDuplicateMarker indicates more than one 'S' or 'E' marker.
	ErrDuplicateMarker = errors.New("grid: duplicate marker")
	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("grid: unknown direction")
)

// Kind classifies a single cell.
type Kind uint8

const (
	// Blocked cells can never be entered.
	Blocked Kind = iota
	// Passable cells can be entered and turned in.
	Passable
)

// String returns the text-maze glyph of k.
func (k Kind) String() string {
	if k == Passable {
		return "."
	}
	return "#"
}

// Position addresses a cell by row and column, (0,0) being the top-left corner.
type Position struct {
	Row, Col int
}

// Step returns the neighbor of p one cell away in direction d.
// The result may lie outside any grid; callers check with InBounds or IsPassable.
func (p Position) Step(d Direction) Position {
	dd := d.Delta()
	return Position{Row: p.Row + dd.Row, Col: p.Col + dd.Col}
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular maze. It is built once and is safe for
// concurrent read-only use by any number of searches.
// Width and Height define dimensions; cells[row*width+col] holds each Kind.
type Grid struct {
	width, height int
	cells         []Kind
	start, end    Position
}
