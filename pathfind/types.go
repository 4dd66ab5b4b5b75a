// Package pathfind defines core types and configuration options for the
// directional grid search.
//
// Cost model:
//
//	– forward step into the next passable cell: StepCost (default 1)
//	– 90° turn in place, either way:          TurnCost (default 1000)
//
// Options:
//
//	– Heading:    initial facing at the start cell (default grid.Right).
//	– StepCost:   cost of a forward step, must be > 0.
//	– TurnCost:   cost of a single 90° turn, must be ≥ 0.
//	– MaxCost:    states whose cost would exceed this are not explored.
//	– CostOnly:   stop as soon as the first end state is finalized.
//	– OnFinalize: hook called once per state when its cost becomes final.
//	– Logger:     receives a debug summary of each search.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrOptionViolation if an option received an invalid value.
//	– ErrNoPath          returned by Result.Err when the end is unreachable.
package pathfind

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrNoPath indicates that no state at the end cell was ever reached.
	ErrNoPath = errors.New("pathfind: end is unreachable")
)

// Default costs of the reindeer cost model.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Unreachable is the MinCost reported when no path exists.
const Unreachable int64 = math.MaxInt64

// State is the unit of search: a cell together with the facing direction.
// The same cell faced differently is a distinct state, because the cost of
// every continuation depends on the facing.
type State struct {
	Pos grid.Position
	Dir grid.Direction
}

// String formats s as "(row,col)/dir".
func (s State) String() string {
	return fmt.Sprintf("%v/%v", s.Pos, s.Dir)
}

// Options configures the behavior of Search.
type Options struct {
	Heading    grid.Direction           // Facing at the start cell
	StepCost   int64                    // Cost of one forward step
	TurnCost   int64                    // Cost of one 90° turn
	MaxCost    int64                    // Maximum cost to explore
	CostOnly   bool                     // Stop at the first finalized end state
	OnFinalize func(s State, cost int64) // Called once per finalized state
	Logger     logrus.FieldLogger       // Debug sink

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the reindeer
// cost model: facing right, step 1, turn 1000, no cost cap, full path-set,
// no-op hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Heading:    grid.Right,
		StepCost:   DefaultStepCost,
		TurnCost:   DefaultTurnCost,
		MaxCost:    math.MaxInt64,
		CostOnly:   false,
		OnFinalize: func(State, int64) {},
		Logger:     discardLogger(),
	}
}

// WithHeading sets the initial facing at the start cell.
func WithHeading(d grid.Direction) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.err = fmt.Errorf("%w: heading %d", ErrOptionViolation, d)
			return
		}
		o.Heading = d
	}
}

// WithStepCost sets the cost of a forward step. It must be positive.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: step cost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of a 90° turn. Zero turns the search into a
// plain shortest-step search; negative values are rejected.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: turn cost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithMaxCost stops exploring states whose cost would exceed max.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: max cost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithCostOnly stops the search at the first finalized end state.
// MinCost stays exact; OptimalCells then holds a single optimal route.
func WithCostOnly() Option {
	return func(o *Options) {
		o.CostOnly = true
	}
}

// WithOnFinalize registers a callback run when a state's cost becomes final.
func WithOnFinalize(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithLogger routes the per-search debug summary to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Stats counts the work done by one search.
type Stats struct {
	Pushed    int // frontier pushes
	Finalized int // states whose cost became final
	Merged    int // equal-cost arrivals merged into a finalized state
	Stale     int // frontier entries discarded as costlier than the record
}

// Result holds the outcome of one search.
//
//   - Found:        false when no end state was reached; MinCost is then Unreachable.
//   - MinCost:      minimum over all directions of the cost recorded at the end cell.
//   - EndStates:    every end state whose cost equals MinCost.
//   - OptimalCells: union of cells over every path achieving MinCost.
//   - Table:        the per-search BestCostTable, for further queries.
type Result struct {
	Found        bool
	MinCost      int64
	EndStates    []State
	OptimalCells mapset.Set[grid.Position]
	Table        *BestCostTable
	Stats        Stats
}
