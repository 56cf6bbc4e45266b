package robot

import (
	"testing"

	"github.com/pthm-cable/micromouse/grid"
)

func testRobot(t *testing.T, n int, opts Options) *Robot {
	t.Helper()
	r, err := New(n, opts, &gridEnv{truth: NewMap(n)})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBuildCommandTurnaround(t *testing.T) {
	r := testRobot(t, 4, Defaults())
	r.cell = grid.Cell{X: 1, Y: 1}
	r.heading = grid.North

	cmd := r.buildCommand(grid.South, r.flood)
	if cmd.Rotation != grid.TurnAround || cmd.Magnitude != 0 {
		t.Errorf("turnaround command = %+v, want rotate 180 in place", cmd)
	}
}

func TestBuildCommandTurnaroundDisabled(t *testing.T) {
	opts := Defaults()
	opts.Allow180 = false
	r := testRobot(t, 4, opts)
	r.cell = grid.Cell{X: 1, Y: 1}
	r.heading = grid.North

	cmd := r.buildCommand(grid.South, r.flood)
	if cmd.Rotation != grid.TurnRight || cmd.Magnitude != 0 {
		t.Errorf("command = %+v, want a stationary quarter turn", cmd)
	}
}

func TestBuildCommandExtendsAlongGradient(t *testing.T) {
	opts := Defaults()
	opts.MaxMove = 3
	r := testRobot(t, 6, opts)
	r.cell = grid.Cell{X: 0, Y: 0}
	r.heading = grid.North

	// Straight descent toward a distant target: the run should use the full
	// magnitude.
	dist := r.m.FloodFill([]grid.Cell{{X: 0, Y: 5}})
	cmd := r.buildCommand(grid.North, dist)
	if cmd.Rotation != grid.NoTurn || cmd.Magnitude != 3 {
		t.Errorf("command = %+v, want straight magnitude 3", cmd)
	}
}

func TestBuildCommandStopsAtTarget(t *testing.T) {
	opts := Defaults()
	opts.MaxMove = 3
	r := testRobot(t, 6, opts)
	r.cell = grid.Cell{X: 0, Y: 0}
	r.heading = grid.North

	// Target two cells away: a three-cell run would overshoot it.
	dist := r.m.FloodFill([]grid.Cell{{X: 0, Y: 2}})
	cmd := r.buildCommand(grid.North, dist)
	if cmd.Magnitude != 2 {
		t.Errorf("magnitude = %d, want 2 to land on the target", cmd.Magnitude)
	}
}

func TestBuildCommandStopsAtKnownWall(t *testing.T) {
	opts := Defaults()
	opts.MaxMove = 3
	r := testRobot(t, 6, opts)
	r.cell = grid.Cell{X: 0, Y: 0}
	r.heading = grid.North
	r.m.addWall(grid.Cell{X: 0, Y: 1}, grid.North)

	dist := r.m.FloodFill([]grid.Cell{{X: 5, Y: 5}})
	cmd := r.buildCommand(grid.North, dist)
	if cmd.Magnitude != 1 {
		t.Errorf("magnitude = %d, want 1 before the known wall", cmd.Magnitude)
	}
}

func TestBuildCommandPocketEscape(t *testing.T) {
	r := testRobot(t, 4, Defaults())
	r.cell = grid.Cell{X: 1, Y: 1}
	r.heading = grid.East

	// No distance field during a pocket escape: single-cell moves only.
	cmd := r.buildCommand(grid.East, nil)
	if cmd.Magnitude != 1 {
		t.Errorf("magnitude = %d, want 1 without a gradient", cmd.Magnitude)
	}
}

func TestCommitPartialMove(t *testing.T) {
	truth := NewMap(6)
	truth.addWall(grid.Cell{X: 0, Y: 1}, grid.North)
	r, err := New(6, Defaults(), &gridEnv{truth: truth})
	if err != nil {
		t.Fatal(err)
	}
	r.heading = grid.North

	// The robot's map does not know the wall yet, so it asks for two cells
	// and gets one; the believed pose must match where it really stopped.
	moved, err := r.commit(Command{Rotation: grid.NoTurn, Magnitude: 2})
	if err != nil {
		t.Fatal(err)
	}
	if moved != 1 {
		t.Errorf("moved = %d, want 1", moved)
	}
	if r.Cell() != (grid.Cell{X: 0, Y: 1}) {
		t.Errorf("cell = %v, want (0,1)", r.Cell())
	}
	if r.MovesRejected() != 1 {
		t.Errorf("MovesRejected = %d, want 1", r.MovesRejected())
	}
}
