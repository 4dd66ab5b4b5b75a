package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Glyphs of the text-maze format.
const (
	markWall  = '#'
	markOpen  = '.'
	markStart = 'S'
	markEnd   = 'E'
)

// Parse reads a text maze where '#' is blocked, '.' is passable, and the
// single 'S' and 'E' cells are passable start and end markers.
// Leading/trailing whitespace on each line and blank lines are ignored.
// Errors carry the 1-based line and column of the offending cell.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows       [][]Kind
		start, end Position
		seenStart  bool
		seenEnd    bool
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]Kind, 0, len(text))
		for col, ch := range []byte(text) {
			pos := Position{Row: len(rows), Col: col}
			switch ch {
			case markWall:
				row = append(row, Blocked)
			case markOpen:
				row = append(row, Passable)
			case markStart:
				if seenStart {
					return nil, fmt.Errorf("%w: second %q at line %d col %d", ErrDuplicateMarker, ch, line, col+1)
				}
				seenStart, start = true, pos
				row = append(row, Passable)
			case markEnd:
				if seenEnd {
					return nil, fmt.Errorf("%w: second %q at line %d col %d", ErrDuplicateMarker, ch, line, col+1)
				}
				seenEnd, end = true, pos
				row = append(row, Passable)
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrUnknownCell, ch, line, col+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading maze: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if !seenStart {
		return nil, ErrNoStart
	}
	if !seenEnd {
		return nil, ErrNoEnd
	}

	return New(rows, start, end)
}

// MustParse is like Parse over a string but panics on error.
// It simplifies fixtures in tests and examples.
func MustParse(s string) *Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}
