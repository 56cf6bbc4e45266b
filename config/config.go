// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/micromouse/grid"
	"github.com/pthm-cable/micromouse/robot"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Robot  RobotConfig  `yaml:"robot"`
	Sensor SensorConfig `yaml:"sensor"`
	Maze   MazeConfig   `yaml:"maze"`
	Batch  BatchConfig  `yaml:"batch"`
	Score  ScoreConfig  `yaml:"score"`
	Viewer ViewerConfig `yaml:"viewer"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// RobotConfig holds the navigation policy parameters.
type RobotConfig struct {
	MaxMove       int      `yaml:"max_move"`       // Longest forward move per step (1..3)
	Allow180      bool     `yaml:"allow_180"`      // Permit in-place 180° turns
	ExploreBudget int      `yaml:"explore_budget"` // Step cap for the exploration run
	ExploitBudget int      `yaml:"exploit_budget"` // Step cap for the exploitation run
	TourMode      int      `yaml:"tour_mode"`      // Coverage tour after first goal visit (0..7)
	TieBreak      []string `yaml:"tie_break"`      // Direction priority, e.g. [north, east, south, west]
}

// SensorConfig holds the range sensor layout.
type SensorConfig struct {
	Sides    []string `yaml:"sides"`     // Robot-relative mounts, e.g. [left, front, right]
	MaxRange int      `yaml:"max_range"` // Reading cap in cells
}

// MazeConfig holds maze loading and generation parameters.
type MazeConfig struct {
	Dim         int   `yaml:"dim"`          // Side length for generated mazes (even, >= 4)
	GenAttempts int   `yaml:"gen_attempts"` // Random wall placements tried before giving up
	Seed        int64 `yaml:"seed"`         // Generator seed (0 = nondeterministic)
}

// BatchConfig holds batch evaluation parameters.
type BatchConfig struct {
	MazeDir   string `yaml:"maze_dir"`   // Directory of maze text files
	OutputDir string `yaml:"output_dir"` // Where run CSVs and summaries go
	TourModes []int  `yaml:"tour_modes"` // Tour modes to evaluate per maze (empty = all)
	Workers   int    `yaml:"workers"`    // Parallel runs (0 = GOMAXPROCS)
}

// ScoreConfig holds the run scoring weights.
type ScoreConfig struct {
	ExploreDivisor float64 `yaml:"explore_divisor"` // Score = explore/divisor + exploit
}

// ViewerConfig holds the interactive maze viewer settings.
type ViewerConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	StepDelay int `yaml:"step_delay"` // Frames between robot steps at speed 1
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TieBreak    []grid.Direction // Parsed Robot.TieBreak
	SensorSides []grid.Side      // Parsed Sensor.Sides
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived parses the string-valued fields into their typed forms.
func (c *Config) computeDerived() error {
	c.Derived.TieBreak = c.Derived.TieBreak[:0]
	for _, s := range c.Robot.TieBreak {
		d, err := grid.ParseDirection(s)
		if err != nil {
			return fmt.Errorf("robot.tie_break: %w", err)
		}
		c.Derived.TieBreak = append(c.Derived.TieBreak, d)
	}

	c.Derived.SensorSides = c.Derived.SensorSides[:0]
	for _, s := range c.Sensor.Sides {
		side, err := grid.ParseSide(s)
		if err != nil {
			return fmt.Errorf("sensor.sides: %w", err)
		}
		c.Derived.SensorSides = append(c.Derived.SensorSides, side)
	}

	if len(c.Batch.TourModes) == 0 {
		for mode := 0; mode < robot.NumTourModes; mode++ {
			c.Batch.TourModes = append(c.Batch.TourModes, mode)
		}
	}
	if c.Score.ExploreDivisor == 0 {
		c.Score.ExploreDivisor = 30
	}
	return nil
}

// RobotOptions converts the loaded config into the options the robot
// validates and runs with. tourMode overrides the configured mode when
// non-negative, so batch runs can sweep modes off one config.
func (c *Config) RobotOptions(tourMode int) robot.Options {
	opts := robot.Defaults()
	opts.MaxMove = c.Robot.MaxMove
	opts.Allow180 = c.Robot.Allow180
	opts.ExploreBudget = c.Robot.ExploreBudget
	opts.ExploitBudget = c.Robot.ExploitBudget
	opts.TourMode = c.Robot.TourMode
	if tourMode >= 0 {
		opts.TourMode = tourMode
	}
	if len(c.Derived.TieBreak) > 0 {
		opts.TieBreak = c.Derived.TieBreak
	}
	if len(c.Derived.SensorSides) > 0 {
		opts.SensorSides = c.Derived.SensorSides
	}
	return opts
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
