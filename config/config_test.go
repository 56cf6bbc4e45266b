package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/micromouse/grid"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Robot.MaxMove != 2 {
		t.Errorf("default max_move = %d, want 2", cfg.Robot.MaxMove)
	}
	if cfg.Sensor.MaxRange != 16 {
		t.Errorf("default max_range = %d, want 16", cfg.Sensor.MaxRange)
	}
	if len(cfg.Derived.SensorSides) != 3 || cfg.Derived.SensorSides[0] != grid.Left {
		t.Errorf("derived sensor sides = %v", cfg.Derived.SensorSides)
	}
	if len(cfg.Batch.TourModes) != 8 {
		t.Errorf("empty tour_modes should expand to all 8, got %v", cfg.Batch.TourModes)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := `
robot:
  max_move: 1
  tie_break: [west, south, east, north]
batch:
  tour_modes: [0, 2]
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Robot.MaxMove != 1 {
		t.Errorf("max_move = %d, want override 1", cfg.Robot.MaxMove)
	}
	if cfg.Derived.TieBreak[0] != grid.West {
		t.Errorf("tie break = %v, want west first", cfg.Derived.TieBreak)
	}
	// Untouched fields keep their defaults.
	if cfg.Robot.ExploreBudget != 1000 {
		t.Errorf("explore_budget = %d, want default 1000", cfg.Robot.ExploreBudget)
	}
	if len(cfg.Batch.TourModes) != 2 {
		t.Errorf("tour_modes = %v, want the two configured", cfg.Batch.TourModes)
	}
}

func TestLoadRejectsBadDirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("robot:\n  tie_break: [up, east, south, west]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unknown direction name should fail loading")
	}
}

func TestRobotOptionsOverride(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.RobotOptions(-1)
	if opts.TourMode != cfg.Robot.TourMode {
		t.Errorf("tour mode = %d, want config value %d", opts.TourMode, cfg.Robot.TourMode)
	}

	opts = cfg.RobotOptions(5)
	if opts.TourMode != 5 {
		t.Errorf("tour mode = %d, want override 5", opts.TourMode)
	}
	if opts.MaxMove != cfg.Robot.MaxMove || len(opts.SensorSides) != 3 {
		t.Errorf("options not populated from config: %+v", opts)
	}
}
