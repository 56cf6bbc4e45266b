package sim

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/pthm-cable/micromouse/config"
	"github.com/pthm-cable/micromouse/maze"
	"github.com/pthm-cable/micromouse/telemetry"
)

// A job is one robot run: one maze file evaluated with one tour mode.
type job struct {
	index int
	path  string
	mz    *maze.Maze
	mode  int
}

// Batch evaluates every maze file in cfg.Batch.MazeDir against every
// configured tour mode, writes per-run records and the per-mode summary
// through om, and returns all records. Runs are independent, so they fan out
// across cfg.Batch.Workers goroutines; records come back in deterministic
// maze-then-mode order regardless of scheduling.
func Batch(cfg *config.Config, om *telemetry.OutputManager) ([]telemetry.RunRecord, error) {
	paths, err := listMazeFiles(cfg.Batch.MazeDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no maze files in %s", cfg.Batch.MazeDir)
	}

	var jobs []job
	for _, p := range paths {
		mz, err := maze.Load(p)
		if err != nil {
			slog.Warn("skipping unreadable maze", "path", p, "error", err)
			continue
		}
		for _, mode := range cfg.Batch.TourModes {
			jobs = append(jobs, job{index: len(jobs), path: p, mz: mz, mode: mode})
		}
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no valid mazes in %s", cfg.Batch.MazeDir)
	}

	workers := cfg.Batch.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	records := make([]telemetry.RunRecord, len(jobs))
	queue := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				records[j.index] = runJob(cfg, j)
			}
		}()
	}
	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	for _, rec := range records {
		if err := om.WriteRun(rec); err != nil {
			return records, err
		}
	}
	if err := om.WriteSummary(telemetry.Summarize(records)); err != nil {
		return records, err
	}
	return records, nil
}

// runJob executes one run; a failed run yields a record carrying the failure
// instead of aborting the batch.
func runJob(cfg *config.Config, j job) telemetry.RunRecord {
	name := filepath.Base(j.path)
	runner, err := NewRunner(name, j.mz, cfg.RobotOptions(j.mode), cfg.Sensor.MaxRange, cfg.Score.ExploreDivisor)
	if err != nil {
		return telemetry.RunRecord{
			Maze: name, Dim: j.mz.Dim(), TourMode: j.mode, Failure: err.Error(),
		}
	}
	rec := runner.Run()
	slog.Info("run finished",
		"maze", name,
		"tour_mode", j.mode,
		"explore_steps", rec.ExploreSteps,
		"exploit_steps", rec.ExploitSteps,
		"score", rec.Score,
		"goal_reached", rec.GoalReached,
	)
	return rec
}

// listMazeFiles returns the .txt files in dir, sorted by name.
func listMazeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading maze directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
