package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pthm-cable/micromouse/grid"
)

func TestNewSealsPerimeter(t *testing.T) {
	m := New(4)
	if err := m.Validate(); err != nil {
		t.Fatalf("fresh maze invalid: %v", err)
	}
	if m.IsOpen(grid.Cell{X: 0, Y: 0}, grid.West) {
		t.Error("west perimeter open")
	}
	if m.IsOpen(grid.Cell{X: 3, Y: 3}, grid.North) {
		t.Error("north perimeter open")
	}
	if !m.IsOpen(grid.Cell{X: 1, Y: 1}, grid.East) {
		t.Error("interior side should start open")
	}
}

func TestOpennessOutOfBounds(t *testing.T) {
	m := New(4)
	for _, c := range []grid.Cell{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 4}} {
		if got := m.Openness(c); got != 0 {
			t.Errorf("Openness%v = %d, want 0", c, got)
		}
	}
}

func TestDistToWall(t *testing.T) {
	m := New(6)
	m.closeBoth(grid.Cell{X: 0, Y: 2}, grid.North)

	tests := []struct {
		name string
		c    grid.Cell
		d    grid.Direction
		max  int
		want int
	}{
		{"stopped by wall", grid.Cell{X: 0, Y: 0}, grid.North, 16, 2},
		{"immediate wall", grid.Cell{X: 0, Y: 2}, grid.North, 16, 0},
		{"perimeter", grid.Cell{X: 0, Y: 0}, grid.West, 16, 0},
		{"open run", grid.Cell{X: 0, Y: 0}, grid.East, 16, 5},
		{"capped", grid.Cell{X: 0, Y: 0}, grid.East, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.DistToWall(tt.c, tt.d, tt.max); got != tt.want {
				t.Errorf("DistToWall = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCloseBothStaysConsistent(t *testing.T) {
	m := New(6)
	m.closeBoth(grid.Cell{X: 2, Y: 2}, grid.East)
	if m.IsOpen(grid.Cell{X: 2, Y: 2}, grid.East) || m.IsOpen(grid.Cell{X: 3, Y: 2}, grid.West) {
		t.Error("both sides of the shared edge should be closed")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("maze invalid after symmetric close: %v", err)
	}
}

func TestValidateCatchesAsymmetry(t *testing.T) {
	m := New(4)
	m.setOpen(grid.Cell{X: 1, Y: 1}, grid.East, false) // neighbor not updated
	if err := m.Validate(); err == nil {
		t.Error("asymmetric wall should fail validation")
	}
}

func TestValidateCatchesUnreachable(t *testing.T) {
	m := New(6)
	// Seal off the start corner entirely.
	m.closeBoth(grid.Cell{X: 0, Y: 0}, grid.North)
	m.closeBoth(grid.Cell{X: 0, Y: 0}, grid.East)
	if err := m.Validate(); err == nil {
		t.Error("maze with an unreachable cell should fail validation")
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, n := range []int{6, 12, 16} {
		m := Generate(n, 50, rng)
		if err := m.Validate(); err != nil {
			t.Fatalf("n=%d: generated maze invalid: %v", n, err)
		}
		if sp := m.ShortestPath(); sp < n-2 {
			t.Errorf("n=%d: shortest path %d is implausibly short", n, sp)
		}
		// The goal region must stay an open 2x2 block.
		h := n / 2
		if !m.IsOpen(grid.Cell{X: h - 1, Y: h - 1}, grid.North) ||
			!m.IsOpen(grid.Cell{X: h - 1, Y: h - 1}, grid.East) ||
			!m.IsOpen(grid.Cell{X: h, Y: h}, grid.West) ||
			!m.IsOpen(grid.Cell{X: h, Y: h}, grid.South) {
			t.Errorf("n=%d: goal region has interior walls", n)
		}
		// The start corridor forces the first move north.
		if m.IsOpen(grid.Cell{X: 0, Y: 0}, grid.East) {
			t.Errorf("n=%d: start corner east side should be walled", n)
		}
	}
}

func TestGenerateGoalHasOneOpening(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := Generate(8, 50, rng)

	openings := 0
	for _, g := range m.Goal() {
		for _, d := range grid.Directions {
			nb := g.Next(d)
			inGoal := false
			for _, other := range m.Goal() {
				if nb == other {
					inGoal = true
				}
			}
			if !inGoal && m.IsOpen(g, d) {
				openings++
			}
		}
	}
	if openings != 1 {
		t.Errorf("goal region has %d openings, want exactly 1", openings)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"bad header", "twelve\n"},
		{"odd dimension", "5\n"},
		{"truncated", "4\n15,15,15,15\n"},
		{"short row", "4\n15,15,15\n15,15,15,15\n15,15,15,15\n15,15,15,15\n"},
		{"value out of range", "4\n15,15,15,16\n15,15,15,15\n15,15,15,15\n15,15,15,15\n"},
		{"open perimeter", "4\n15,15,15,15\n15,15,15,15\n15,15,15,15\n15,15,15,15\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.text)); err == nil {
				t.Error("Parse accepted malformed input")
			}
		})
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Generate(6, 50, rng)

	var sb strings.Builder
	if err := m.Write(&sb); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			c := grid.Cell{X: x, Y: y}
			if got.Openness(c) != m.Openness(c) {
				t.Fatalf("cell %v: openness %d != %d", c, got.Openness(c), m.Openness(c))
			}
		}
	}
}
