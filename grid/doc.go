// Package grid models a rectangular maze of passable and blocked cells
// with a designated start and end, the input of every directional search
// in github.com/katalvlaran/gridpath.
//
// What:
//
//   - Grid wraps a row-major []Kind with fixed Width×Height, Start and End.
//   - Direction is a closed four-variant enum (Up, Right, Down, Left) with
//     table-driven deltas and turn adjacency.
//   - Parse reads text mazes drawn with '#', '.', 'S' and 'E'.
//   - FromBlocked builds an open grid with a list of corrupted cells.
//
// Why:
//
//   - Separates input parsing from search, so the same Grid can be shared
//     read-only by any number of concurrent searches.
//
// Complexity:
//
//   - New, Parse, FromBlocked: O(W×H) time and memory.
//   - IsPassable, InBounds, Kind:  O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrStartOutOfBounds / ErrEndOutOfBounds: marker outside the grid.
//   - ErrStartBlocked / ErrEndBlocked: marker on a blocked cell.
//   - ErrUnknownCell, ErrNoStart, ErrNoEnd, ErrDuplicateMarker: text parse failures.
//   - ErrBlockedOutOfBounds: FromBlocked received a cell outside the grid.
//   - ErrBadDirection: ParseDirection received an unknown name.
package grid
