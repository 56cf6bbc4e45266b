// Package grid provides the shared grid geometry primitives: cells,
// cardinal directions, and discrete rotations.
package grid

import "fmt"

// Direction is one of the four absolute cardinal headings.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
	NumDirections
)

// Directions lists the cardinal directions in the canonical N,E,S,W order.
var Directions = [NumDirections]Direction{North, East, South, West}

// DX returns the x delta of a one-cell move in this direction.
func (d Direction) DX() int {
	switch d {
	case East:
		return 1
	case West:
		return -1
	}
	return 0
}

// DY returns the y delta of a one-cell move in this direction.
// Y grows northward: the start corner (0,0) is the bottom-left cell.
func (d Direction) DY() int {
	switch d {
	case North:
		return 1
	case South:
		return -1
	}
	return 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Mask returns the single-bit wall mask for this direction.
func (d Direction) Mask() uint8 {
	return 1 << d
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// Rotation is a discrete heading change in degrees.
type Rotation int

const (
	TurnLeft   Rotation = -90
	NoTurn     Rotation = 0
	TurnRight  Rotation = 90
	TurnAround Rotation = 180
)

// RotationTo returns the rotation that takes heading d to heading t.
func (d Direction) RotationTo(t Direction) Rotation {
	switch (t - d + NumDirections) % NumDirections {
	case 1:
		return TurnRight
	case 2:
		return TurnAround
	case 3:
		return TurnLeft
	}
	return NoTurn
}

// Turned returns the heading after applying a rotation to d.
func (d Direction) Turned(r Rotation) Direction {
	switch r {
	case TurnRight:
		return (d + 1) % NumDirections
	case TurnAround:
		return d.Opposite()
	case TurnLeft:
		return (d + 3) % NumDirections
	}
	return d
}

// TurnCost ranks rotations for tie-breaking: straight beats a quarter turn,
// a quarter turn beats a full turnaround.
func (r Rotation) TurnCost() int {
	switch r {
	case NoTurn:
		return 0
	case TurnLeft, TurnRight:
		return 1
	}
	return 2
}

// Side is a robot-relative side, used by wall sensing before headings are
// resolved to absolute directions.
type Side uint8

const (
	Front Side = iota
	Right
	Back
	Left
	NumSides
)

// SideMask returns the single-bit mask for a relative side.
func SideMask(s Side) uint8 {
	return 1 << s
}

// Absolute resolves a relative side against a heading.
func (s Side) Absolute(heading Direction) Direction {
	return (heading + Direction(s)) % NumDirections
}

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Right:
		return "right"
	case Back:
		return "back"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// ParseSide converts a lowercase relative side name to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "front":
		return Front, nil
	case "right":
		return Right, nil
	case "back":
		return Back, nil
	case "left":
		return Left, nil
	}
	return Front, fmt.Errorf("unknown sensor side %q", s)
}
