package maze

import (
	"math/rand"

	"github.com/pthm-cable/micromouse/grid"
)

// Generate builds a random solvable maze: seal the perimeter, wall off the
// start corner's right side and the goal region with a single random opening,
// then keep adding random interior walls for as long as one can be placed
// without cutting any cell off from the goal. attempts bounds how many random
// placements are tried before the generator accepts that the maze is full.
// The result always passes Validate.
func Generate(n, attempts int, rng *rand.Rand) *Maze {
	m := New(n)
	h := n / 2

	// The start corridor forces the first move north, like the sample mazes.
	m.closeBoth(grid.Cell{X: 0, Y: 0}, grid.East)

	// Seal the goal region perimeter, then punch one random opening in it.
	goalWalls := []struct {
		c grid.Cell
		d grid.Direction
	}{
		{grid.Cell{X: h - 1, Y: h - 1}, grid.West},
		{grid.Cell{X: h - 1, Y: h - 1}, grid.South},
		{grid.Cell{X: h - 1, Y: h}, grid.West},
		{grid.Cell{X: h - 1, Y: h}, grid.North},
		{grid.Cell{X: h, Y: h - 1}, grid.South},
		{grid.Cell{X: h, Y: h - 1}, grid.East},
		{grid.Cell{X: h, Y: h}, grid.North},
		{grid.Cell{X: h, Y: h}, grid.East},
	}
	for _, w := range goalWalls {
		m.closeBoth(w.c, w.d)
	}
	opening := goalWalls[rng.Intn(len(goalWalls))]
	m.openBoth(opening.c, opening.d)

	goal := m.Goal()
	for m.addOneWall(attempts, goal, rng) {
	}

	// The goal region itself stays a free 2×2 block.
	m.openBoth(grid.Cell{X: h - 1, Y: h - 1}, grid.North)
	m.openBoth(grid.Cell{X: h - 1, Y: h - 1}, grid.East)
	m.openBoth(grid.Cell{X: h, Y: h}, grid.West)
	m.openBoth(grid.Cell{X: h, Y: h}, grid.South)
	return m
}

// addOneWall tries up to attempts random (cell, direction) placements and
// commits the first one that leaves every cell reachable from the goal.
func (m *Maze) addOneWall(attempts int, goal []grid.Cell, rng *rand.Rand) bool {
	for i := 0; i < attempts; i++ {
		c := grid.Cell{X: rng.Intn(m.dim), Y: rng.Intn(m.dim)}
		d := grid.Directions[rng.Intn(len(grid.Directions))]
		if !m.IsOpen(c, d) {
			continue
		}
		m.closeBoth(c, d)
		if m.fullyReachable(goal) {
			return true
		}
		m.openBoth(c, d)
	}
	return false
}

func (m *Maze) fullyReachable(goal []grid.Cell) bool {
	dist := m.flood(goal)
	for _, v := range dist {
		if v < 0 {
			return false
		}
	}
	return true
}
