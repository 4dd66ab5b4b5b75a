package bytefall

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Sentinel errors for byte-fall simulation.
var (
	ErrMalformedLine = errors.New("bytefall: malformed coordinate line")
	ErrBadSize       = errors.New("bytefall: grid size must be positive")
	ErrBadCount      = errors.New("bytefall: byte count out of range")
	ErrNeverBlocked  = errors.New("bytefall: exit is never blocked")
)

// Parse reads one "x,y" pair per line and returns them as positions
// (Row = y, Col = x). Blank lines are skipped.
func Parse(r io.Reader) ([]grid.Position, error) {
	var out []grid.Position
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, text)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, text)
		}
		out = append(out, grid.Position{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bytefall: reading input: %w", err)
	}
	return out, nil
}

// Corrupt builds the size×size memory grid after the first n bytes landed.
// The start is the top-left corner and the exit the bottom-right corner.
func Corrupt(size int, bytes []grid.Position, n int) (*grid.Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if n < 0 || n > len(bytes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadCount, n, len(bytes))
	}
	exit := grid.Position{Row: size - 1, Col: size - 1}
	return grid.FromBlocked(size, size, bytes[:n], grid.Position{}, exit)
}

// ShortestSteps returns the minimum number of steps from the top-left corner
// to the exit after the first n bytes landed, or pathfind.ErrNoPath.
func ShortestSteps(size int, bytes []grid.Position, n int, opts ...pathfind.Option) (int64, error) {
	g, err := Corrupt(size, bytes, n)
	if err != nil {
		return 0, err
	}
	res, err := pathfind.Search(g, stepOptions(opts)...)
	if err != nil {
		return 0, err
	}
	if err := res.Err(); err != nil {
		return 0, err
	}
	return res.MinCost, nil
}

// FirstBlocking returns the index and coordinate of the first byte whose
// landing leaves the exit unreachable. Reachability only shrinks as bytes
// land, so the boundary is found by binary search over prefix lengths.
func FirstBlocking(size int, bytes []grid.Position, opts ...pathfind.Option) (int, grid.Position, error) {
	if size <= 0 {
		return 0, grid.Position{}, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	var searchErr error
	reachable := func(n int) bool {
		if searchErr != nil {
			return false
		}
		_, err := ShortestSteps(size, bytes, n, opts...)
		switch {
		case err == nil:
			return true
		case errors.Is(err, pathfind.ErrNoPath), errors.Is(err, grid.ErrStartBlocked), errors.Is(err, grid.ErrEndBlocked):
			return false
		default:
			searchErr = err
			return false
		}
	}

	// Smallest prefix length in [1, len] that is not reachable; len+1 if none.
	n := 1 + sort.Search(len(bytes), func(i int) bool {
		return !reachable(i + 1)
	})
	if searchErr != nil {
		return 0, grid.Position{}, searchErr
	}
	if n > len(bytes) {
		return 0, grid.Position{}, ErrNeverBlocked
	}
	return n - 1, bytes[n-1], nil
}

// stepOptions makes turns free so the cost counts steps only.
// Caller options are applied afterwards and may override.
func stepOptions(opts []pathfind.Option) []pathfind.Option {
	base := []pathfind.Option{pathfind.WithTurnCost(0), pathfind.WithStepCost(1), pathfind.WithCostOnly()}
	return append(base, opts...)
}
