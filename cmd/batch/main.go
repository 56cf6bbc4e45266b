// Batch evaluation: every maze file in a directory, every configured tour
// mode, results written as CSV plus a per-mode summary.
//
// Usage: go run ./cmd/batch -maze-dir mazes -output-dir results
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/micromouse/config"
	"github.com/pthm-cable/micromouse/sim"
	"github.com/pthm-cable/micromouse/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mazeDir := flag.String("maze-dir", "", "Maze directory (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot (empty = use config)")
	workers := flag.Int("workers", 0, "Parallel runs (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *mazeDir != "" {
		cfg.Batch.MazeDir = *mazeDir
	}
	if *outputDir != "" {
		cfg.Batch.OutputDir = *outputDir
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}

	om, err := telemetry.NewOutputManager(cfg.Batch.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting batch evaluation",
		"maze_dir", cfg.Batch.MazeDir,
		"tour_modes", cfg.Batch.TourModes,
		"workers", cfg.Batch.Workers,
	)

	records, err := sim.Batch(cfg, om)
	if err != nil {
		slog.Error("batch evaluation failed", "error", err)
		os.Exit(1)
	}

	for _, s := range telemetry.Summarize(records) {
		slog.Info("mode summary",
			"tour_mode", s.TourMode,
			"runs", s.Runs,
			"solved", s.Solved,
			"mean_score", s.MeanScore,
			"median_score", s.MedianScore,
		)
	}
	slog.Info("batch finished", "runs", len(records), "output_dir", om.Dir())
}
