package robot

import (
	"fmt"

	"github.com/pthm-cable/micromouse/grid"
)

// interpretReading converts ranged distance readings into a robot-relative
// wall mask for the current cell. A reading of 0 means a wall immediately on
// that side; anything greater means the adjacent cell on that side is open.
// The exact range beyond 1 carries no extra wall information for the current
// cell, and the back side is never sensed, so it stays assumed-open.
func (r *Robot) interpretReading(reading []int) (uint8, error) {
	if len(reading) != len(r.opts.SensorSides) {
		return 0, fmt.Errorf("%w: got %d readings for %d sensors",
			ErrConfig, len(reading), len(r.opts.SensorSides))
	}
	var mask uint8
	for i, v := range reading {
		if v < 0 {
			return 0, fmt.Errorf("%w: negative reading %d on %s sensor",
				ErrConfig, v, r.opts.SensorSides[i])
		}
		if v == 0 {
			mask |= grid.SideMask(r.opts.SensorSides[i])
		}
	}
	return mask, nil
}
