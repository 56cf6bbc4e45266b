package robot

import (
	"testing"

	"github.com/pthm-cable/micromouse/grid"
)

func TestFloodFillOpenGrid(t *testing.T) {
	m := NewMap(4)
	dist := m.FloodFill([]grid.Cell{{X: 3, Y: 3}})

	tests := []struct {
		c    grid.Cell
		want int
	}{
		{grid.Cell{X: 3, Y: 3}, 0},
		{grid.Cell{X: 2, Y: 3}, 1},
		{grid.Cell{X: 0, Y: 0}, 6},
		{grid.Cell{X: 1, Y: 2}, 3},
	}
	for _, tt := range tests {
		if got := dist[m.idx(tt.c)]; got != tt.want {
			t.Errorf("dist%v = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestFloodFillMultiTarget(t *testing.T) {
	m := NewMap(4)
	goal := []grid.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	dist := m.FloodFill(goal)

	for _, g := range goal {
		if dist[m.idx(g)] != 0 {
			t.Errorf("goal cell %v has distance %d", g, dist[m.idx(g)])
		}
	}
	if got := dist[m.idx(grid.Cell{X: 0, Y: 0})]; got != 2 {
		t.Errorf("corner distance = %d, want 2", got)
	}
}

func TestFloodFillRespectsWalls(t *testing.T) {
	m := NewMap(4)
	// Cut the bottom row off from the rest except through (3,0)->(3,1).
	for x := 0; x < 3; x++ {
		m.addWall(grid.Cell{X: x, Y: 0}, grid.North)
	}
	dist := m.FloodFill([]grid.Cell{{X: 0, Y: 1}})

	if got := dist[m.idx(grid.Cell{X: 0, Y: 0})]; got != 7 {
		t.Errorf("detour distance = %d, want 7", got)
	}
}

func TestFloodFillUnreachablePocket(t *testing.T) {
	m := NewMap(4)
	// Seal (0,0) completely.
	m.addWall(grid.Cell{X: 0, Y: 0}, grid.North)
	m.addWall(grid.Cell{X: 0, Y: 0}, grid.East)
	dist := m.FloodFill([]grid.Cell{{X: 3, Y: 3}})

	if got := dist[m.idx(grid.Cell{X: 0, Y: 0})]; got != Unreachable {
		t.Errorf("sealed cell distance = %d, want Unreachable", got)
	}
	if got := dist[m.idx(grid.Cell{X: 1, Y: 0})]; got == Unreachable {
		t.Error("neighbor outside the pocket should stay reachable")
	}
}

// A wall discovery can only lengthen routes: after every recompute each
// cell's distance is at least its pre-discovery value, and cells already
// unreachable never become reachable.
func TestFloodFillNonDecreasingUnderWallDiscovery(t *testing.T) {
	m := NewMap(6)
	target := []grid.Cell{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	before := m.FloodFill(target)

	discoveries := []struct {
		c grid.Cell
		d grid.Direction
	}{
		{grid.Cell{X: 2, Y: 1}, grid.North},
		{grid.Cell{X: 3, Y: 1}, grid.North},
		{grid.Cell{X: 1, Y: 2}, grid.East},
		{grid.Cell{X: 0, Y: 0}, grid.North},
		{grid.Cell{X: 0, Y: 0}, grid.East}, // seals the start corner
	}
	for _, w := range discoveries {
		m.addWall(w.c, w.d)
		after := m.FloodFill(target)
		for x := 0; x < 6; x++ {
			for y := 0; y < 6; y++ {
				i := m.idx(grid.Cell{X: x, Y: y})
				switch {
				case before[i] == Unreachable && after[i] != Unreachable:
					t.Errorf("wall %v %v: cell (%d,%d) became reachable", w.c, w.d, x, y)
				case after[i] != Unreachable && after[i] < before[i]:
					t.Errorf("wall %v %v: dist(%d,%d) dropped %d to %d", w.c, w.d, x, y, before[i], after[i])
				}
			}
		}
		before = after
	}
}

// Every reachable non-target cell must have a neighbor one step closer, or
// the gradient-descent policy could stall.
func TestFloodFillMonotone(t *testing.T) {
	m := NewMap(6)
	m.addWall(grid.Cell{X: 2, Y: 2}, grid.North)
	m.addWall(grid.Cell{X: 3, Y: 2}, grid.North)
	m.addWall(grid.Cell{X: 1, Y: 4}, grid.East)
	target := []grid.Cell{{X: 5, Y: 5}}
	dist := m.FloodFill(target)

	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			c := grid.Cell{X: x, Y: y}
			d := dist[m.idx(c)]
			if d <= 0 {
				continue
			}
			hasDescent := false
			for _, nb := range m.OpenNeighbors(c) {
				if dist[m.idx(nb.Cell)] == d-1 {
					hasDescent = true
				}
			}
			if !hasDescent {
				t.Errorf("cell %v at distance %d has no closer neighbor", c, d)
			}
		}
	}
}
