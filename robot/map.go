// Package robot implements the exploration and navigation core: the robot's
// internal maze map, flood-fill distance planning, the per-step decision
// policy, and the translation of chosen cells into rotate+move commands.
package robot

import (
	"github.com/pthm-cable/micromouse/grid"
)

// Unreachable marks cells with no known open path to the current target set.
const Unreachable = -1

// Map is the robot's internal picture of the maze: per-cell wall knowledge,
// visit counts, and the two cached distance fields. Walls start fully
// unknown (assumed open) and only ever get added.
type Map struct {
	dim       int
	walls     []uint8 // bit d.Mask() set = known wall on that side
	visits    []int
	distGoal  []int
	distStart []int
}

// Neighbor pairs an open direction with the cell it leads to.
type Neighbor struct {
	Dir  grid.Direction
	Cell grid.Cell
}

// NewMap creates an all-open map for an n×n maze. Distance fields start
// unreachable until the first planner pass.
func NewMap(n int) *Map {
	m := &Map{
		dim:       n,
		walls:     make([]uint8, n*n),
		visits:    make([]int, n*n),
		distGoal:  make([]int, n*n),
		distStart: make([]int, n*n),
	}
	for i := range m.distGoal {
		m.distGoal[i] = Unreachable
		m.distStart[i] = Unreachable
	}
	return m
}

// Dim returns the maze dimension N.
func (m *Map) Dim() int { return m.dim }

func (m *Map) idx(c grid.Cell) int { return c.Y*m.dim + c.X }

// Walls returns the known wall mask for a cell.
func (m *Map) Walls(c grid.Cell) uint8 {
	if !c.In(m.dim) {
		return 0
	}
	return m.walls[m.idx(c)]
}

// IsOpen reports whether a move from c in direction d is in-bounds and not
// blocked by a known wall. Out-of-bounds is always blocked.
func (m *Map) IsOpen(c grid.Cell, d grid.Direction) bool {
	if !c.In(m.dim) || !c.Next(d).In(m.dim) {
		return false
	}
	return m.walls[m.idx(c)]&d.Mask() == 0
}

// OpenNeighbors returns the currently-open (direction, cell) pairs around c
// in canonical N,E,S,W order. Recomputed from wall state on every call;
// walls only get added, so stale caches would only ever be too permissive.
func (m *Map) OpenNeighbors(c grid.Cell) []Neighbor {
	out := make([]Neighbor, 0, 4)
	for _, d := range grid.Directions {
		if m.IsOpen(c, d) {
			out = append(out, Neighbor{Dir: d, Cell: c.Next(d)})
		}
	}
	return out
}

// RecordWalls merges a robot-relative wall mask (front/right/back/left bits)
// sensed at c under the given heading into the map, mirroring each new wall
// onto the far side of the shared edge. Returns the cells whose wall mask
// changed; an empty result means the reading carried no new information.
func (m *Map) RecordWalls(c grid.Cell, local uint8, heading grid.Direction) []grid.Cell {
	if !c.In(m.dim) {
		return nil
	}
	var changed []grid.Cell
	for s := grid.Front; s < grid.NumSides; s++ {
		if local&grid.SideMask(s) == 0 {
			continue
		}
		d := s.Absolute(heading)
		if m.addWall(c, d) {
			changed = append(changed, c)
			if nb := c.Next(d); nb.In(m.dim) {
				changed = append(changed, nb)
			}
		}
	}
	return changed
}

// addWall sets the wall bit on c toward d and the matching bit on the
// neighbor. Reports whether anything was new.
func (m *Map) addWall(c grid.Cell, d grid.Direction) bool {
	i := m.idx(c)
	if m.walls[i]&d.Mask() != 0 {
		return false
	}
	m.walls[i] |= d.Mask()
	if nb := c.Next(d); nb.In(m.dim) {
		m.walls[m.idx(nb)] |= d.Opposite().Mask()
	}
	return true
}

// Visit increments the visit count of c.
func (m *Map) Visit(c grid.Cell) {
	if c.In(m.dim) {
		m.visits[m.idx(c)]++
	}
}

// VisitCount returns how many times c has been entered.
func (m *Map) VisitCount(c grid.Cell) int {
	if !c.In(m.dim) {
		return 0
	}
	return m.visits[m.idx(c)]
}

// DistanceToGoal returns the cached flood distance from c to the goal
// region, or Unreachable.
func (m *Map) DistanceToGoal(c grid.Cell) int {
	if !c.In(m.dim) {
		return Unreachable
	}
	return m.distGoal[m.idx(c)]
}

// DistanceToStart returns the cached flood distance from c to the start
// cell, or Unreachable.
func (m *Map) DistanceToStart(c grid.Cell) int {
	if !c.In(m.dim) {
		return Unreachable
	}
	return m.distStart[m.idx(c)]
}

// CellsDiscovered counts cells entered at least once.
func (m *Map) CellsDiscovered() int {
	n := 0
	for _, v := range m.visits {
		if v > 0 {
			n++
		}
	}
	return n
}

// KnownWalls counts the distinct interior wall edges recorded so far.
// Each shared edge is counted once.
func (m *Map) KnownWalls() int {
	n := 0
	for y := 0; y < m.dim; y++ {
		for x := 0; x < m.dim; x++ {
			c := grid.Cell{X: x, Y: y}
			w := m.walls[m.idx(c)]
			if w&grid.North.Mask() != 0 && c.Next(grid.North).In(m.dim) {
				n++
			}
			if w&grid.East.Mask() != 0 && c.Next(grid.East).In(m.dim) {
				n++
			}
		}
	}
	return n
}
