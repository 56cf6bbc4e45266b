package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	records := []RunRecord{
		{Maze: "a", TourMode: 0, Score: 40, ExploreSteps: 30, ExploitSteps: 39, CellsDiscovered: 60, GoalReached: true},
		{Maze: "b", TourMode: 0, Score: 60, ExploreSteps: 60, ExploitSteps: 58, CellsDiscovered: 80, GoalReached: true},
		{Maze: "c", TourMode: 0, Failure: "robot: step budget exceeded"},
		{Maze: "a", TourMode: 3, Score: 50, ExploreSteps: 90, ExploitSteps: 47, CellsDiscovered: 120, GoalReached: true},
	}

	summaries := Summarize(records)
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	m0 := summaries[0]
	if m0.TourMode != 0 || m0.Runs != 3 || m0.Solved != 2 {
		t.Errorf("mode 0 summary = %+v", m0)
	}
	if math.Abs(m0.MeanScore-50) > 0.001 {
		t.Errorf("mode 0 mean score = %v, want 50", m0.MeanScore)
	}

	m3 := summaries[1]
	if m3.TourMode != 3 || m3.Runs != 1 || m3.Solved != 1 {
		t.Errorf("mode 3 summary = %+v", m3)
	}
	if math.Abs(m3.MeanScore-50) > 0.001 {
		t.Errorf("mode 3 mean score = %v, want 50", m3.MeanScore)
	}
	if math.Abs(m3.MeanCoverage-120) > 0.001 {
		t.Errorf("mode 3 mean coverage = %v, want 120", m3.MeanCoverage)
	}
}

func TestSummarizeEmptyMode(t *testing.T) {
	records := []RunRecord{
		{Maze: "a", TourMode: 1, Failure: "robot: no open neighbor"},
	}
	summaries := Summarize(records)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if s.Runs != 1 || s.Solved != 0 {
		t.Errorf("summary = %+v", s)
	}
	if s.MeanScore != 0 || s.MedianScore != 0 {
		t.Errorf("unsolved mode should report zero statistics, got %+v", s)
	}
}

func TestRunRecordSolved(t *testing.T) {
	tests := []struct {
		name string
		rec  RunRecord
		want bool
	}{
		{"clean run", RunRecord{GoalReached: true}, true},
		{"goal missed", RunRecord{GoalReached: false}, false},
		{"failed run", RunRecord{GoalReached: true, Failure: "robot: no open neighbor"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Solved(); got != tt.want {
				t.Errorf("Solved() = %v, want %v", got, tt.want)
			}
		})
	}
}
