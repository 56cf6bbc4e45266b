// Package telemetry collects per-run results, writes them as CSV, and
// aggregates them into per-mode summaries.
package telemetry

// RunRecord is one completed robot run on one maze.
type RunRecord struct {
	Maze             string  `csv:"maze"`
	Dim              int     `csv:"dim"`
	ShortestPath     int     `csv:"shortest_path"`
	TourMode         int     `csv:"tour_mode"`
	ExploreSteps     int     `csv:"explore_steps"`
	ExploitSteps     int     `csv:"exploit_steps"`
	ExploitCells     int     `csv:"exploit_cells"`
	CellsDiscovered  int     `csv:"cells_discovered"`
	WallsKnown       int     `csv:"walls_known"`
	MovesRejected    int     `csv:"moves_rejected"`
	Score            float64 `csv:"score"`
	GoalReached      bool    `csv:"goal_reached"`
	ExploreTruncated bool    `csv:"explore_truncated"`
	Failure          string  `csv:"failure"`
}

// Solved reports whether the run counts toward scoring: the exploit pass
// reached the goal without a terminal failure.
func (r RunRecord) Solved() bool {
	return r.GoalReached && r.Failure == ""
}
