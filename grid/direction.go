package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass-aligned unit vectors.
// The numeric order Up, Right, Down, Left is the clockwise cycle.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	numDirections = 4
)

// Directions lists every Direction in clockwise order starting at Up.
var Directions = [numDirections]Direction{Up, Right, Down, Left}

var deltaTable = [numDirections]Position{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

// turnTable holds {clockwise, counter-clockwise} for each direction.
var turnTable = [numDirections][2]Direction{
	Up:    {Right, Left},
	Right: {Down, Up},
	Down:  {Left, Right},
	Left:  {Up, Down},
}

var directionNames = [numDirections]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool { return d < numDirections }

// Delta returns the unit offset of a forward step in direction d.
func (d Direction) Delta() Position { return deltaTable[d] }

// Turns returns the two perpendicular directions reachable by one 90° turn:
// clockwise first, then counter-clockwise.
func (d Direction) Turns() [2]Direction { return turnTable[d] }

// Clockwise returns d rotated 90° clockwise.
func (d Direction) Clockwise() Direction { return turnTable[d][0] }

// CounterClockwise returns d rotated 90° counter-clockwise.
func (d Direction) CounterClockwise() Direction { return turnTable[d][1] }

// Opposite returns d rotated 180°.
func (d Direction) Opposite() Direction { return turnTable[turnTable[d][0]][0] }

// String returns the lower-case name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// ParseDirection accepts a direction name ("up", "Right"...), its compass
// alias ("north", "east", "south", "west") or its arrow glyph ('^', '>', 'v', '<').
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "north", "n", "^":
		return Up, nil
	case "right", "east", "e", ">":
		return Right, nil
	case "down", "south", "s", "v":
		return Down, nil
	case "left", "west", "w", "<":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}
