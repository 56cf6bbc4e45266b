package robot

import "github.com/pthm-cable/micromouse/grid"

// Command is one actuation step: a rotation applied first, then a forward
// move of Magnitude cells. A 180° rotation always has magnitude 0; the robot
// must stop fully to turn around.
type Command struct {
	Rotation  grid.Rotation
	Magnitude int
}

// buildCommand translates the chosen direction into a command. Turning
// around is a two-tick maneuver (rotate in place, then move next tick); with
// Allow180 off it degrades to two quarter turns. Straight or quarter-turn
// moves start at magnitude 1 and extend up to MaxMove while the map knows
// the next cell is open and the distance field keeps strictly decreasing,
// so a longer run never overshoots the gradient. dist may be nil during a
// pocket-escape move, which always has magnitude 1.
func (r *Robot) buildCommand(dir grid.Direction, dist []int) Command {
	rot := r.heading.RotationTo(dir)
	if rot == grid.TurnAround {
		if r.opts.Allow180 {
			return Command{Rotation: grid.TurnAround, Magnitude: 0}
		}
		return Command{Rotation: grid.TurnRight, Magnitude: 0}
	}

	mag := 1
	if dist != nil {
		at := r.cell.Next(dir)
		for mag < r.opts.MaxMove {
			if dist[r.m.idx(at)] == 0 {
				break // target reached, never run past it
			}
			if !r.m.IsOpen(at, dir) {
				break
			}
			next := at.Next(dir)
			nd := dist[r.m.idx(next)]
			if nd == Unreachable || nd >= dist[r.m.idx(at)] {
				break
			}
			at = next
			mag++
		}
	}
	return Command{Rotation: rot, Magnitude: mag}
}

// commit sends the command to the environment and reconciles the believed
// pose with what actually happened. The optimistic pose update is implicit:
// the environment returns the authoritative pose, and a partially-honored
// move is recovered by simply adopting it; the wall that stopped the move
// will show up in the next sensor reading.
func (r *Robot) commit(cmd Command) (moved int, err error) {
	from := r.cell
	newCell, newHeading, moved, err := r.env.CommitMove(r.cell, r.heading, cmd.Rotation, cmd.Magnitude)
	if err != nil {
		return 0, err
	}
	r.cell = newCell
	r.heading = newHeading
	// Visit every cell actually traversed beyond the first, which the policy
	// already counted before the move was issued.
	for i := 2; i <= moved; i++ {
		r.m.Visit(from.Move(newHeading, i))
	}
	if moved < cmd.Magnitude {
		r.rejected++
	}
	return moved, nil
}
