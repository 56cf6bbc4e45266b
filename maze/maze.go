// Package maze holds the ground-truth maze: the openness of every cell side,
// the text codec for maze files, a random generator, and the environment the
// robot senses and moves through.
package maze

import (
	"fmt"

	"github.com/pthm-cable/micromouse/grid"
)

// Maze is an n×n grid of openness bitmasks. Bit 1<<d set means the side in
// direction d is open; the encoding matches the maze text files, so a parsed
// maze is usable as-is. Cell (0,0) is the bottom-left start corner.
type Maze struct {
	dim  int
	open []uint8
}

// New returns an n×n maze with every interior side open and the perimeter
// sealed, the blank canvas the generator carves walls into.
func New(n int) *Maze {
	m := &Maze{dim: n, open: make([]uint8, n*n)}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			var o uint8
			for _, d := range grid.Directions {
				if (grid.Cell{X: x, Y: y}).Next(d).In(n) {
					o |= d.Mask()
				}
			}
			m.open[m.idx(grid.Cell{X: x, Y: y})] = o
		}
	}
	return m
}

func (m *Maze) idx(c grid.Cell) int { return c.X*m.dim + c.Y }

// Dim returns the maze side length.
func (m *Maze) Dim() int { return m.dim }

// Openness returns the raw openness bitmask of a cell. Out-of-bounds cells
// are fully sealed.
func (m *Maze) Openness(c grid.Cell) uint8 {
	if !c.In(m.dim) {
		return 0
	}
	return m.open[m.idx(c)]
}

// IsOpen reports whether the side of c facing d is open. Out-of-bounds cells
// have no open sides.
func (m *Maze) IsOpen(c grid.Cell, d grid.Direction) bool {
	if !c.In(m.dim) {
		return false
	}
	return m.open[m.idx(c)]&d.Mask() != 0
}

// DistToWall counts the open cells ahead of c in direction d before the
// first wall, capped at max.
func (m *Maze) DistToWall(c grid.Cell, d grid.Direction, max int) int {
	dist := 0
	for dist < max && m.IsOpen(c, d) {
		dist++
		c = c.Next(d)
	}
	return dist
}

// Goal returns the 2×2 center region.
func (m *Maze) Goal() []grid.Cell {
	h := m.dim / 2
	return []grid.Cell{
		{X: h - 1, Y: h - 1},
		{X: h - 1, Y: h},
		{X: h, Y: h - 1},
		{X: h, Y: h},
	}
}

// Start returns the fixed start corner.
func (m *Maze) Start() grid.Cell { return grid.Cell{X: 0, Y: 0} }

func (m *Maze) setOpen(c grid.Cell, d grid.Direction, open bool) {
	if open {
		m.open[m.idx(c)] |= d.Mask()
	} else {
		m.open[m.idx(c)] &^= d.Mask()
	}
}

// closeBoth seals the side between c and its neighbor in d on both cells.
func (m *Maze) closeBoth(c grid.Cell, d grid.Direction) {
	m.setOpen(c, d, false)
	if n := c.Next(d); n.In(m.dim) {
		m.setOpen(n, d.Opposite(), false)
	}
}

// openBoth opens the side between c and its neighbor in d on both cells.
func (m *Maze) openBoth(c grid.Cell, d grid.Direction) {
	m.setOpen(c, d, true)
	if n := c.Next(d); n.In(m.dim) {
		m.setOpen(n, d.Opposite(), true)
	}
}

// flood returns the step distance from the target set to every cell, -1 for
// unreachable. Same expansion the robot runs, here over true openness.
func (m *Maze) flood(targets []grid.Cell) []int {
	dist := make([]int, m.dim*m.dim)
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]grid.Cell, 0, len(targets))
	for _, t := range targets {
		dist[m.idx(t)] = 0
		queue = append(queue, t)
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range grid.Directions {
			if !m.IsOpen(c, d) {
				continue
			}
			n := c.Next(d)
			if dist[m.idx(n)] < 0 {
				dist[m.idx(n)] = dist[m.idx(c)] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// ShortestPath returns the step distance from the start corner to the goal
// region, or -1 if the goal is unreachable.
func (m *Maze) ShortestPath() int {
	return m.flood(m.Goal())[m.idx(m.Start())]
}

// Validate checks the structural rules every playable maze must satisfy: an
// even dimension of at least 4, a sealed perimeter, mutually consistent
// openness between adjacent cells, and every cell reachable from the goal.
func (m *Maze) Validate() error {
	if m.dim < 4 || m.dim%2 != 0 {
		return fmt.Errorf("maze dimension %d must be even and at least 4", m.dim)
	}
	for x := 0; x < m.dim; x++ {
		for y := 0; y < m.dim; y++ {
			c := grid.Cell{X: x, Y: y}
			for _, d := range grid.Directions {
				n := c.Next(d)
				if !n.In(m.dim) {
					if m.IsOpen(c, d) {
						return fmt.Errorf("cell %v is open through the perimeter to the %v", c, d)
					}
					continue
				}
				if m.IsOpen(c, d) != m.IsOpen(n, d.Opposite()) {
					return fmt.Errorf("cells %v and %v disagree about the side between them", c, n)
				}
			}
		}
	}
	dist := m.flood(m.Goal())
	for x := 0; x < m.dim; x++ {
		for y := 0; y < m.dim; y++ {
			if dist[m.idx(grid.Cell{X: x, Y: y})] < 0 {
				return fmt.Errorf("cell (%d,%d) is unreachable from the goal region", x, y)
			}
		}
	}
	return nil
}
