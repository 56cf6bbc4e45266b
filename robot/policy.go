package robot

import "github.com/pthm-cable/micromouse/grid"

// candidate scores one open neighbor for selection. Lower is better on every
// key; keys are compared in order.
type candidate struct {
	dir      grid.Direction
	dist     int
	turnCost int
	visits   int
}

// chooseNeighbor selects the direction to move next from the robot's current
// cell using the active distance field.
//
// Explore phase: prefer the neighbor with the smallest finite distance, then
// the least heading change (straight > turn > reverse), then the least
// visited, then the fixed tie-break priority. If no open neighbor has a
// finite distance (an enclosed pocket), fall back to the least-visited open
// neighbor to keep exploring. Exploit phase: strict minimum distance with
// heading change and the fixed priority as the only tie-breaks; the field
// is stable, so visit counts must not perturb the path.
//
// Iterating in tie-break order makes the priority implicit: later candidates
// must win strictly to displace an earlier one. Returns ErrStuck when the
// cell has no open neighbor at all.
func (r *Robot) chooseNeighbor(dist []int, exploit bool) (grid.Direction, error) {
	var best *candidate
	var fallback *candidate
	for _, d := range r.opts.TieBreak {
		if !r.m.IsOpen(r.cell, d) {
			continue
		}
		nb := r.cell.Next(d)
		c := candidate{
			dir:      d,
			dist:     dist[r.m.idx(nb)],
			turnCost: r.heading.RotationTo(d).TurnCost(),
			visits:   r.m.VisitCount(nb),
		}
		if fallback == nil || c.lessFallback(*fallback) {
			cc := c
			fallback = &cc
		}
		if c.dist == Unreachable {
			continue
		}
		if best == nil || c.less(*best, exploit) {
			cc := c
			best = &cc
		}
	}
	if best != nil {
		return best.dir, nil
	}
	if fallback != nil {
		return fallback.dir, nil
	}
	return 0, ErrStuck
}

// less reports whether c strictly beats o under the phase's key order.
func (c candidate) less(o candidate, exploit bool) bool {
	if c.dist != o.dist {
		return c.dist < o.dist
	}
	if c.turnCost != o.turnCost {
		return c.turnCost < o.turnCost
	}
	if !exploit && c.visits != o.visits {
		return c.visits < o.visits
	}
	return false
}

// lessFallback orders the pocket-escape candidates: least visited first,
// then least heading change.
func (c candidate) lessFallback(o candidate) bool {
	if c.visits != o.visits {
		return c.visits < o.visits
	}
	if c.turnCost != o.turnCost {
		return c.turnCost < o.turnCost
	}
	return false
}
