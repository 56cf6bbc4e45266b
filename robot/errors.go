package robot

import "errors"

// Error taxonomy for a run. Configuration errors are fatal and surfaced
// before the run starts; a partially-honored move is not an error at all,
// it is recovered by adopting the environment-reported pose and counted via
// MovesRejected; a blown explore budget only ends the explore phase.
var (
	// ErrConfig indicates a malformed sensor, action, or tour configuration.
	ErrConfig = errors.New("robot: invalid configuration")

	// ErrBudgetExceeded indicates a phase ran out of its step budget. Fatal
	// only in the exploit phase.
	ErrBudgetExceeded = errors.New("robot: step budget exceeded")

	// ErrStuck indicates the current cell has no open neighbor at all. On a
	// connected maze this is an invariant violation and aborts the run.
	ErrStuck = errors.New("robot: no open neighbor")
)
