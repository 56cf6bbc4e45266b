package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ModeSummary aggregates all runs that used one tour mode.
type ModeSummary struct {
	TourMode     int     `csv:"tour_mode"`
	Runs         int     `csv:"runs"`
	Solved       int     `csv:"solved"`
	MeanScore    float64 `csv:"mean_score"`
	StdScore     float64 `csv:"std_score"`
	MedianScore  float64 `csv:"median_score"`
	MeanExplore  float64 `csv:"mean_explore_steps"`
	MeanExploit  float64 `csv:"mean_exploit_steps"`
	MeanCoverage float64 `csv:"mean_cells_discovered"`
}

// Summarize groups runs by tour mode and computes per-mode statistics over
// the solved runs. Modes appear in ascending order; a mode with no solved
// runs reports zero statistics but still lists its run count.
func Summarize(records []RunRecord) []ModeSummary {
	byMode := make(map[int][]RunRecord)
	for _, r := range records {
		byMode[r.TourMode] = append(byMode[r.TourMode], r)
	}

	modes := make([]int, 0, len(byMode))
	for m := range byMode {
		modes = append(modes, m)
	}
	sort.Ints(modes)

	summaries := make([]ModeSummary, 0, len(modes))
	for _, m := range modes {
		runs := byMode[m]
		s := ModeSummary{TourMode: m, Runs: len(runs)}

		var scores, explore, exploit, coverage []float64
		for _, r := range runs {
			if !r.Solved() {
				continue
			}
			s.Solved++
			scores = append(scores, r.Score)
			explore = append(explore, float64(r.ExploreSteps))
			exploit = append(exploit, float64(r.ExploitSteps))
			coverage = append(coverage, float64(r.CellsDiscovered))
		}
		if s.Solved > 0 {
			s.MeanScore = stat.Mean(scores, nil)
			if s.Solved > 1 {
				s.StdScore = stat.StdDev(scores, nil)
			}
			sort.Float64s(scores)
			s.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
			s.MeanExplore = stat.Mean(explore, nil)
			s.MeanExploit = stat.Mean(exploit, nil)
			s.MeanCoverage = stat.Mean(coverage, nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
