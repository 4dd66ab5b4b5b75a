// Package bytefall simulates bytes falling into a square memory grid and
// answers two questions with pathfind: how many steps the exit is from the
// top-left corner after the first n bytes land, and which byte first cuts
// the exit off entirely.
//
// Input is one "x,y" coordinate per line, x being the column.
//
// Errors:
//
//   - ErrMalformedLine: a line is not two comma-separated integers.
//   - ErrBadSize:       the grid side is not positive.
//   - ErrBadCount:      n is negative or exceeds the number of bytes.
//   - ErrNeverBlocked:  every prefix of the input leaves the exit reachable.
//   - pathfind.ErrNoPath from ShortestSteps when the exit is cut off.
package bytefall
