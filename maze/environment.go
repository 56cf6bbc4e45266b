package maze

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/micromouse/grid"
)

// ErrOutOfBounds is returned when a query names a cell outside the maze.
var ErrOutOfBounds = errors.New("maze: cell out of bounds")

// Env is the simulated environment around one robot: it answers range
// queries against the true maze and executes movement commands against the
// true walls. The env is stateless with respect to the robot; the pose is
// passed in and the authoritative result returned, so many envs over the
// same maze may run concurrently.
type Env struct {
	maze     *Maze
	sides    []grid.Side
	maxRange int
}

// NewEnv wraps m with sensors mounted on the given robot-relative sides,
// each reporting up to maxRange open cells.
func NewEnv(m *Maze, sides []grid.Side, maxRange int) *Env {
	return &Env{maze: m, sides: sides, maxRange: maxRange}
}

// Maze returns the wrapped ground-truth maze.
func (e *Env) Maze() *Maze { return e.maze }

// Sense returns one range reading per mounted sensor, in mount order: the
// number of open cells from c in the sensor's absolute direction before the
// first wall, capped at the sensor range.
func (e *Env) Sense(c grid.Cell, heading grid.Direction) ([]int, error) {
	if !c.In(e.maze.dim) {
		return nil, fmt.Errorf("sense at %v: %w", c, ErrOutOfBounds)
	}
	readings := make([]int, len(e.sides))
	for i, s := range e.sides {
		readings[i] = e.maze.DistToWall(c, s.Absolute(heading), e.maxRange)
	}
	return readings, nil
}

// CommitMove applies the rotation, then walks forward cell by cell until a
// wall or the requested magnitude stops the robot. A blocked multi-cell move
// is honored partially; the returned count tells the caller how far the
// robot actually went.
func (e *Env) CommitMove(at grid.Cell, heading grid.Direction, rot grid.Rotation, magnitude int) (grid.Cell, grid.Direction, int, error) {
	if !at.In(e.maze.dim) {
		return at, heading, 0, fmt.Errorf("move from %v: %w", at, ErrOutOfBounds)
	}
	if magnitude < 0 {
		return at, heading, 0, fmt.Errorf("move from %v: negative magnitude %d", at, magnitude)
	}
	heading = heading.Turned(rot)
	moved := 0
	for moved < magnitude && e.maze.IsOpen(at, heading) {
		at = at.Next(heading)
		moved++
	}
	return at, heading, moved, nil
}
