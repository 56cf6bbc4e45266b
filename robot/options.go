package robot

import (
	"fmt"

	"github.com/pthm-cable/micromouse/grid"
)

// Options parameterizes a run: the allowed action set, step budgets, the
// coverage tour, and the deterministic tie-break order. Zero values are
// filled in from Defaults by New.
type Options struct {
	// MaxMove is the maximum forward magnitude of one command (1..3).
	MaxMove int

	// Allow180 permits an in-place 180° rotation. When false the robot turns
	// around with two quarter turns.
	Allow180 bool

	// ExploreBudget and ExploitBudget cap the ticks spent in each phase.
	ExploreBudget int
	ExploitBudget int

	// TourMode selects the coverage tour continued after the goal region is
	// first reached (0 = switch to exploit immediately). See BuildTour.
	TourMode int

	// TieBreak is the fixed direction priority used when distance, heading
	// cost, and visit counts all tie. Must name each direction exactly once.
	TieBreak []grid.Direction

	// SensorSides names the robot-relative side each range reading covers,
	// in reading order. The back side cannot be sensed.
	SensorSides []grid.Side
}

// Defaults returns the option set matching the reference robot: three
// sensors (left, front, right), two-cell moves, in-place turnarounds.
func Defaults() Options {
	return Options{
		MaxMove:       2,
		Allow180:      true,
		ExploreBudget: 1000,
		ExploitBudget: 1000,
		TourMode:      0,
		TieBreak:      []grid.Direction{grid.North, grid.East, grid.South, grid.West},
		SensorSides:   []grid.Side{grid.Left, grid.Front, grid.Right},
	}
}

// validate checks the action set and sensor layout before the run starts.
func (o *Options) validate() error {
	if o.MaxMove < 1 || o.MaxMove > 3 {
		return fmt.Errorf("%w: max move %d outside 1..3", ErrConfig, o.MaxMove)
	}
	if o.ExploreBudget <= 0 || o.ExploitBudget <= 0 {
		return fmt.Errorf("%w: step budgets must be positive", ErrConfig)
	}
	if len(o.SensorSides) == 0 {
		return fmt.Errorf("%w: no sensor sides configured", ErrConfig)
	}
	for _, s := range o.SensorSides {
		if s == grid.Back {
			return fmt.Errorf("%w: robot cannot sense behind itself", ErrConfig)
		}
		if s >= grid.NumSides {
			return fmt.Errorf("%w: unknown sensor side %d", ErrConfig, s)
		}
	}
	if len(o.TieBreak) != int(grid.NumDirections) {
		return fmt.Errorf("%w: tie-break order must list all four directions", ErrConfig)
	}
	var seen [grid.NumDirections]bool
	for _, d := range o.TieBreak {
		if d >= grid.NumDirections || seen[d] {
			return fmt.Errorf("%w: malformed tie-break order", ErrConfig)
		}
		seen[d] = true
	}
	return nil
}
