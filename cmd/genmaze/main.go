// Random maze generator: produces solvable maze text files named after
// their dimension, wall-placement attempts, and first-column fingerprint.
//
// Usage: go run ./cmd/genmaze -n 12 -count 10 -out mazes
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/micromouse/config"
	"github.com/pthm-cable/micromouse/grid"
	"github.com/pthm-cable/micromouse/maze"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	dim := flag.Int("n", 0, "Maze dimension, even and at least 4 (0 = use config)")
	count := flag.Int("count", 1, "Number of mazes to generate")
	attempts := flag.Int("attempts", 0, "Wall placements tried before the maze is considered full (0 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outDir := flag.String("out", "mazes", "Output directory")

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
	n := cfg.Maze.Dim
	if *dim > 0 {
		n = *dim
	}
	tries := cfg.Maze.GenAttempts
	if *attempts > 0 {
		tries = *attempts
	}
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Maze.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("failed to create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		mz := maze.Generate(n, tries, rng)
		path := filepath.Join(*outDir, mazeFileName(mz, tries))
		if err := mz.Save(path); err != nil {
			slog.Error("failed to save maze", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("generated maze", "path", path, "dim", n, "shortest_path", mz.ShortestPath())
	}
}

// mazeFileName fingerprints the maze by its first column, so regenerated
// duplicates overwrite rather than pile up.
func mazeFileName(mz *maze.Maze, attempts int) string {
	name := fmt.Sprintf("ran_%d_%d_", mz.Dim(), attempts)
	for y := 0; y < mz.Dim() && y < 6; y++ {
		name += fmt.Sprintf("%d", mz.Openness(grid.Cell{X: 0, Y: y}))
	}
	return name + ".txt"
}
