package robot

import (
	"fmt"

	"github.com/pthm-cable/micromouse/grid"
)

// NumTourModes is the number of defined coverage tours.
const NumTourModes = 8

// tourLeg names a waypoint set in a tour script, independent of maze size.
type tourLeg uint8

const (
	legGoal tourLeg = iota // any cell of the goal region
	legStart
	legFarCorner // any corner other than the start
	legTopLeft
	legTopRight
	legBottomRight
)

// tourScripts defines the extra exploration legs walked after the goal
// region is first reached. Mode 0 ends exploration immediately; the others
// trade explore steps for wall coverage before the exploit run.
var tourScripts = [NumTourModes][]tourLeg{
	0: {},
	1: {legFarCorner},
	2: {legStart},
	3: {legFarCorner, legStart},
	4: {legTopLeft, legGoal, legTopRight, legGoal, legBottomRight, legGoal},
	5: {legStart, legGoal, legStart, legGoal},
	6: {legStart, legGoal, legStart, legGoal, legStart, legGoal},
	7: {legTopLeft, legTopRight, legBottomRight, legStart},
}

// BuildTour expands a tour mode into the sequence of waypoint sets for an
// n×n maze. The first leg is always the goal region; reaching any cell of a
// leg advances to the next, and exhausting the legs ends the explore phase.
func BuildTour(mode, n int, goal []grid.Cell, start grid.Cell) ([][]grid.Cell, error) {
	if mode < 0 || mode >= NumTourModes {
		return nil, fmt.Errorf("%w: tour mode %d outside 0..%d", ErrConfig, mode, NumTourModes-1)
	}
	tl := grid.Cell{X: 0, Y: n - 1}
	tr := grid.Cell{X: n - 1, Y: n - 1}
	br := grid.Cell{X: n - 1, Y: 0}

	legs := [][]grid.Cell{goal}
	for _, l := range tourScripts[mode] {
		switch l {
		case legGoal:
			legs = append(legs, goal)
		case legStart:
			legs = append(legs, []grid.Cell{start})
		case legFarCorner:
			legs = append(legs, []grid.Cell{br, tl, tr})
		case legTopLeft:
			legs = append(legs, []grid.Cell{tl})
		case legTopRight:
			legs = append(legs, []grid.Cell{tr})
		case legBottomRight:
			legs = append(legs, []grid.Cell{br})
		}
	}
	return legs, nil
}
