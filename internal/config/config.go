// Package config loads the YAML run configuration of the swapgraph CLI.
//
// A minimal file:
//
//	puzzle:
//	  rows: 2
//	  cols: 2
//	  start: [[4, 3], [2, 1]]
//	strategy: astar
//	log_level: debug
//
// A missing goal means the sorted grid. Config file lookup (priority order):
//  1. the --config flag
//  2. $SWAPGRAPH_CONFIG
//  3. ./swapgraph.yaml
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swapgraph/puzzle"
)

// ErrInvalidConfig indicates a configuration that parses but cannot be run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPath names the environment variable consulted by FindPath.
const EnvPath = "SWAPGRAPH_CONFIG"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "swapgraph.yaml"

// Config is the full run configuration.
type Config struct {
	Puzzle        PuzzleConfig `yaml:"puzzle"`
	Strategy      string       `yaml:"strategy"`
	MaxExpansions int          `yaml:"max_expansions"`
	StateLimit    int          `yaml:"state_limit"`
	LogLevel      string       `yaml:"log_level"`
}

// PuzzleConfig describes the grid to solve.
type PuzzleConfig struct {
	Rows  int     `yaml:"rows"`
	Cols  int     `yaml:"cols"`
	Start [][]int `yaml:"start,omitempty"`
	Goal  [][]int `yaml:"goal,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Strategy: puzzle.AStar.String(),
		LogLevel: zerolog.LevelInfoValue,
	}
}

// FindPath returns the first existing config file among $SWAPGRAPH_CONFIG
// and ./swapgraph.yaml, or "" when there is none.
func FindPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}

	return ""
}

// Load reads path, or the result of FindPath when path is empty. Without any
// file it returns Default(). Missing fields are filled with defaults and the
// result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FindPath()
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Strategy == "" {
		c.Strategy = d.Strategy
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Puzzle.Rows == 0 && len(c.Puzzle.Start) > 0 {
		c.Puzzle.Rows = len(c.Puzzle.Start)
	}
	if c.Puzzle.Cols == 0 && len(c.Puzzle.Start) > 0 {
		c.Puzzle.Cols = len(c.Puzzle.Start[0])
	}
}

// Validate reports the first setting that cannot be run, wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := puzzle.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be >= 0, got %d", ErrInvalidConfig, c.MaxExpansions)
	}
	if c.StateLimit < 0 {
		return fmt.Errorf("%w: state_limit must be >= 0, got %d", ErrInvalidConfig, c.StateLimit)
	}
	if c.Puzzle.Rows < 0 || c.Puzzle.Cols < 0 {
		return fmt.Errorf("%w: puzzle dimensions %dx%d", ErrInvalidConfig, c.Puzzle.Rows, c.Puzzle.Cols)
	}
	if len(c.Puzzle.Start) > 0 {
		if _, err := c.StartGrid(); err != nil {
			return fmt.Errorf("%w: start: %w", ErrInvalidConfig, err)
		}
	}
	if len(c.Puzzle.Goal) > 0 {
		if _, err := puzzle.New(c.Puzzle.Rows, c.Puzzle.Cols, c.Puzzle.Goal); err != nil {
			return fmt.Errorf("%w: goal: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// StartGrid builds the configured start grid.
func (c *Config) StartGrid() (*puzzle.Grid, error) {
	return puzzle.New(c.Puzzle.Rows, c.Puzzle.Cols, c.Puzzle.Start)
}

// GoalGrid builds the configured goal for an m×n start, falling back to the
// sorted grid.
func (c *Config) GoalGrid(m, n int) (*puzzle.Grid, error) {
	if len(c.Puzzle.Goal) == 0 {
		return puzzle.Sorted(m, n)
	}

	return puzzle.New(m, n, c.Puzzle.Goal)
}

// SearchStrategy returns the parsed strategy.
func (c *Config) SearchStrategy() (puzzle.Strategy, error) {
	return puzzle.ParseStrategy(c.Strategy)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}

	return lvl
}

// SolveOptions translates the configuration into puzzle.Solve options.
func (c *Config) SolveOptions() ([]puzzle.SolveOption, error) {
	s, err := c.SearchStrategy()
	if err != nil {
		return nil, err
	}

	return []puzzle.SolveOption{
		puzzle.WithStrategy(s),
		puzzle.WithMaxExpansions(c.MaxExpansions),
		puzzle.WithStateLimit(c.StateLimit),
	}, nil
}
