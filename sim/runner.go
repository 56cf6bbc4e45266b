// Package sim drives complete robot runs: the sense/decide/move loop over a
// single maze, and parallel batch evaluation across maze files and tour
// modes.
package sim

import (
	"errors"

	"github.com/pthm-cable/micromouse/maze"
	"github.com/pthm-cable/micromouse/robot"
	"github.com/pthm-cable/micromouse/telemetry"
)

// Runner owns one robot inside one environment and steps them in lockstep.
// It is also the handle the interactive viewer uses to advance the
// simulation one tick at a time.
type Runner struct {
	mz   *maze.Maze
	env  *maze.Env
	rob  *robot.Robot
	name string
	mode int

	exploreDivisor float64
	err            error
}

// NewRunner wires a fresh robot into mz. name labels the run in records and
// logs, typically the maze file name.
func NewRunner(name string, mz *maze.Maze, opts robot.Options, maxRange int, exploreDivisor float64) (*Runner, error) {
	if err := mz.Validate(); err != nil {
		return nil, err
	}
	env := maze.NewEnv(mz, opts.SensorSides, maxRange)
	rob, err := robot.New(mz.Dim(), opts, env)
	if err != nil {
		return nil, err
	}
	if exploreDivisor <= 0 {
		exploreDivisor = 30
	}
	return &Runner{mz: mz, env: env, rob: rob, name: name, mode: opts.TourMode, exploreDivisor: exploreDivisor}, nil
}

// Robot returns the running robot for inspection.
func (r *Runner) Robot() *robot.Robot { return r.rob }

// Maze returns the ground-truth maze.
func (r *Runner) Maze() *maze.Maze { return r.mz }

// Tick advances the simulation by one sense/decide/move cycle, handling the
// reset between the explore and exploit runs. It returns false once the run
// is finished, successfully or not.
func (r *Runner) Tick() bool {
	if r.rob.Phase() == robot.PhaseDone {
		return false
	}
	if r.rob.AwaitingReset() {
		r.rob.ResetForExploit()
		return true
	}
	reading, err := r.env.Sense(r.rob.Cell(), r.rob.Heading())
	if err != nil {
		r.err = err
		return false
	}
	if _, err := r.rob.Step(reading); err != nil {
		r.err = err
		return false
	}
	return r.rob.Phase() != robot.PhaseDone
}

// Run drives the simulation to completion and returns the run record.
func (r *Runner) Run() telemetry.RunRecord {
	for r.Tick() {
	}
	return r.Record()
}

// Record assembles the result of the run so far.
func (r *Runner) Record() telemetry.RunRecord {
	m := r.rob.Map()
	rec := telemetry.RunRecord{
		Maze:             r.name,
		Dim:              r.mz.Dim(),
		ShortestPath:     r.mz.ShortestPath(),
		TourMode:         r.mode,
		ExploreSteps:     r.rob.ExploreSteps(),
		ExploitSteps:     r.rob.ExploitSteps(),
		ExploitCells:     r.rob.ExploitCells(),
		CellsDiscovered:  m.CellsDiscovered(),
		WallsKnown:       m.KnownWalls(),
		MovesRejected:    r.rob.MovesRejected(),
		GoalReached:      r.rob.GoalReached(),
		ExploreTruncated: r.rob.ExploreTruncated(),
	}
	failure := r.rob.Failure()
	if failure == nil {
		failure = r.err
	}
	if failure != nil {
		rec.Failure = failure.Error()
	}
	if rec.GoalReached && failure == nil {
		rec.Score = float64(rec.ExploreSteps)/r.exploreDivisor + float64(rec.ExploitSteps)
	}
	return rec
}

// Err returns the error that stopped the run outside the robot, if any.
func (r *Runner) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rob.Failure()
}

// IsRecoverable reports whether err allows the batch to continue with the
// remaining runs rather than aborting.
func IsRecoverable(err error) bool {
	return errors.Is(err, robot.ErrBudgetExceeded) || errors.Is(err, robot.ErrStuck)
}
