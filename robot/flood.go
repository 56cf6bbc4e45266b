package robot

import "github.com/pthm-cable/micromouse/grid"

// FloodFill computes a breadth-first distance field from the target set over
// the cells connected by currently-known-open edges. Targets get distance 0;
// cells with no open path to any target stay Unreachable.
//
// The field is always recomputed in full: walls are only ever added, so a
// discovery can only lengthen paths, and re-expanding every cell from scratch
// is both correct and cheap at the grid sizes in play.
func (m *Map) FloodFill(targets []grid.Cell) []int {
	dist := make([]int, m.dim*m.dim)
	for i := range dist {
		dist[i] = Unreachable
	}

	frontier := make([]grid.Cell, 0, len(targets))
	for _, t := range targets {
		if !t.In(m.dim) {
			continue
		}
		if dist[m.idx(t)] == Unreachable {
			dist[m.idx(t)] = 0
			frontier = append(frontier, t)
		}
	}

	for len(frontier) > 0 {
		next := frontier[:0:0]
		for _, c := range frontier {
			d := dist[m.idx(c)]
			for _, nb := range m.OpenNeighbors(c) {
				if dist[m.idx(nb.Cell)] == Unreachable {
					dist[m.idx(nb.Cell)] = d + 1
					next = append(next, nb.Cell)
				}
			}
		}
		frontier = next
	}
	return dist
}

// RecomputeGoal refreshes the cached distance-to-goal field.
func (m *Map) RecomputeGoal(goal []grid.Cell) {
	m.distGoal = m.FloodFill(goal)
}

// RecomputeStart refreshes the cached distance-to-start field, used for the
// return legs of a coverage tour.
func (m *Map) RecomputeStart(start grid.Cell) {
	m.distStart = m.FloodFill([]grid.Cell{start})
}
