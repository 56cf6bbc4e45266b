package robot

import (
	"fmt"

	"github.com/pthm-cable/micromouse/grid"
)

// Phase is the run phase of the two-pass navigation scheme.
type Phase uint8

const (
	// PhaseExplore is the first pass: discover walls while reaching the goal
	// region (plus any configured coverage tour).
	PhaseExplore Phase = iota
	// PhaseExploit is the second pass: follow the flood-fill gradient along
	// the shortest known path to the goal.
	PhaseExploit
	// PhaseDone is terminal: the goal was reached again, or the run failed.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseExplore:
		return "explore"
	case PhaseExploit:
		return "exploit"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Environment is the movement-commit boundary of the maze simulator. It
// applies the rotation, then moves forward cell by cell until a real wall or
// the requested magnitude stops it, returning the authoritative pose and how
// far the robot actually went.
type Environment interface {
	CommitMove(at grid.Cell, heading grid.Direction, rot grid.Rotation, magnitude int) (grid.Cell, grid.Direction, int, error)
}

// Robot is the exploration/navigation core. It owns the internal map and its
// believed pose; the true pose lives in the environment and is reconciled on
// every committed move. Single-owner, not safe for concurrent use.
type Robot struct {
	opts Options
	env  Environment
	m    *Map

	goal  []grid.Cell
	start grid.Cell

	cell    grid.Cell
	heading grid.Direction

	phase          Phase
	awaitingReset  bool
	exploreHitGoal bool
	exploreCut     bool
	goalReached    bool
	failure        error

	legs   [][]grid.Cell
	leg    int
	target []grid.Cell
	flood  []int

	steps        int
	exploreSteps int
	exploitSteps int
	exploitCells int
	exploitTurns int
	rejected     int
}

// GoalRegion returns the 2×2 center block of an n×n maze.
func GoalRegion(n int) []grid.Cell {
	h := n / 2
	return []grid.Cell{
		{X: h - 1, Y: h - 1},
		{X: h - 1, Y: h},
		{X: h, Y: h - 1},
		{X: h, Y: h},
	}
}

// New creates a robot for an n×n maze at the start corner (0,0) heading
// north. Options are validated up front; a bad action set or sensor layout
// fails here with ErrConfig rather than mid-run.
func New(n int, opts Options, env Environment) (*Robot, error) {
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("%w: maze dimension %d must be even and at least 4", ErrConfig, n)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	r := &Robot{
		opts:    opts,
		env:     env,
		m:       NewMap(n),
		goal:    GoalRegion(n),
		start:   grid.Cell{X: 0, Y: 0},
		heading: grid.North,
	}
	legs, err := BuildTour(opts.TourMode, n, r.goal, r.start)
	if err != nil {
		return nil, err
	}
	r.legs = legs
	r.cell = r.start
	r.target = r.legs[0]
	r.m.RecomputeGoal(r.goal)
	r.m.RecomputeStart(r.start)
	r.flood = r.m.FloodFill(r.target)
	r.m.Visit(r.start)
	return r, nil
}

// Step advances the robot by one tick: fold the sensor reading into the map,
// re-plan if a new wall invalidated the distance fields, pick the next cell,
// and commit the resulting command. A zero command with the robot awaiting
// reset (or done) means the current phase has ended and no move was made.
func (r *Robot) Step(reading []int) (Command, error) {
	if r.phase == PhaseDone || r.awaitingReset {
		return Command{}, nil
	}

	mask, err := r.interpretReading(reading)
	if err != nil {
		r.fail(err)
		return Command{}, err
	}
	if changed := r.m.RecordWalls(r.cell, mask, r.heading); len(changed) > 0 {
		// A wall can only lengthen paths, so both cached fields and the
		// active field must be re-expanded before the move decision.
		r.m.RecomputeGoal(r.goal)
		r.m.RecomputeStart(r.start)
		r.flood = r.m.FloodFill(r.target)
	}
	r.steps++

	if r.phase == PhaseExplore {
		return r.stepExplore()
	}
	return r.stepExploit()
}

func (r *Robot) stepExplore() (Command, error) {
	r.exploreSteps++
	if r.exploreSteps > r.opts.ExploreBudget {
		// Exploration failed to finish; proceed to exploit with whatever map
		// was built. Recoverable by design.
		r.exploreCut = true
		r.awaitingReset = true
		return Command{}, nil
	}

	// Reached the current leg's target: advance the tour, retargeting the
	// planner, and keep moving in the same tick.
	for r.flood[r.m.idx(r.cell)] == 0 {
		for _, g := range r.goal {
			if r.cell == g {
				r.exploreHitGoal = true
			}
		}
		r.leg++
		if r.leg >= len(r.legs) {
			r.awaitingReset = true
			return Command{}, nil
		}
		r.target = r.legs[r.leg]
		r.flood = r.m.FloodFill(r.target)
	}

	dir, err := r.chooseNeighbor(r.flood, false)
	if err != nil {
		r.fail(err)
		return Command{}, err
	}
	cmd := r.buildCommand(dir, r.flood)
	if cmd.Magnitude > 0 {
		r.m.Visit(r.cell.Next(dir))
	}
	if _, err := r.commit(cmd); err != nil {
		r.fail(err)
		return Command{}, err
	}
	return cmd, nil
}

func (r *Robot) stepExploit() (Command, error) {
	r.exploitSteps++
	if r.exploitSteps > r.opts.ExploitBudget {
		err := fmt.Errorf("exploit phase: %w", ErrBudgetExceeded)
		r.fail(err)
		return Command{}, err
	}

	dir, err := r.chooseNeighbor(r.flood, true)
	if err != nil {
		r.fail(err)
		return Command{}, err
	}
	cmd := r.buildCommand(dir, r.flood)
	if cmd.Magnitude > 0 {
		r.m.Visit(r.cell.Next(dir))
	}
	moved, err := r.commit(cmd)
	if err != nil {
		r.fail(err)
		return Command{}, err
	}
	if cmd.Rotation != grid.NoTurn {
		r.exploitTurns++
	}
	r.exploitCells += moved

	if r.flood[r.m.idx(r.cell)] == 0 {
		r.goalReached = true
		r.phase = PhaseDone
	}
	return cmd, nil
}

// ResetForExploit switches the robot to the second run: pose back to the
// start corner heading north, per-phase counters restarted, wall knowledge
// and visit counts preserved. Called exactly once between phases, after Step
// leaves the robot awaiting reset.
func (r *Robot) ResetForExploit() {
	if r.phase != PhaseExplore {
		return
	}
	r.awaitingReset = false
	r.phase = PhaseExploit
	r.cell = r.start
	r.heading = grid.North
	r.target = r.goal
	r.m.RecomputeGoal(r.goal)
	r.flood = r.m.FloodFill(r.goal)
}

func (r *Robot) fail(err error) {
	r.failure = err
	r.phase = PhaseDone
}

// Phase returns the current run phase.
func (r *Robot) Phase() Phase { return r.phase }

// AwaitingReset reports that the explore phase has ended and the caller must
// invoke ResetForExploit before the next Step.
func (r *Robot) AwaitingReset() bool { return r.awaitingReset }

// Cell returns the robot's believed (environment-reconciled) cell.
func (r *Robot) Cell() grid.Cell { return r.cell }

// Heading returns the robot's believed heading.
func (r *Robot) Heading() grid.Direction { return r.heading }

// Map exposes the internal map read-only, for result logging and rendering.
func (r *Robot) Map() *Map { return r.m }

// Steps returns the total ticks consumed across both phases.
func (r *Robot) Steps() int { return r.steps }

// ExploreSteps returns the ticks spent in the explore phase.
func (r *Robot) ExploreSteps() int { return r.exploreSteps }

// ExploitSteps returns the ticks spent in the exploit phase.
func (r *Robot) ExploitSteps() int { return r.exploitSteps }

// ExploitCells returns the cells traversed during the exploit phase.
func (r *Robot) ExploitCells() int { return r.exploitCells }

// ExploitTurns returns the exploit commands that included a rotation.
func (r *Robot) ExploitTurns() int { return r.exploitTurns }

// GoalReached reports whether the exploit run reached the goal region.
func (r *Robot) GoalReached() bool { return r.goalReached }

// ExploreHitGoal reports whether the explore run ever entered the goal region.
func (r *Robot) ExploreHitGoal() bool { return r.exploreHitGoal }

// ReturningToStart reports whether the current explore leg targets the start
// corner, as on the homeward legs of a coverage tour.
func (r *Robot) ReturningToStart() bool {
	return r.phase == PhaseExplore && len(r.target) == 1 && r.target[0] == r.start
}

// ExploreTruncated reports whether the explore phase ran out of budget.
func (r *Robot) ExploreTruncated() bool { return r.exploreCut }

// MovesRejected returns how many commands the environment honored only
// partially.
func (r *Robot) MovesRejected() int { return r.rejected }

// Failure returns the error that terminated the run, or nil.
func (r *Robot) Failure() error { return r.failure }
