// Package config loads experiment configuration for learndyn. It
// supports loading from YAML files with environment variable
// overrides for deployment-specific settings.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alinchet/learning-dynamics/internal/experiment"
	"github.com/alinchet/learning-dynamics/internal/game"
	"github.com/alinchet/learning-dynamics/internal/sim"
)

// Config contains all learndyn configuration settings.
type Config struct {
	// Model holds the population and game parameters shared by every
	// replicate.
	Model ModelConfig `yaml:"model"`

	// Run controls how many replicates to run and how.
	Run RunConfig `yaml:"run"`

	// Sweep configures the swept parameter. Ignored unless the sweep
	// command is used.
	Sweep SweepConfig `yaml:"sweep"`

	// Storage selects where experiment records are kept.
	Storage StorageConfig `yaml:"storage"`

	// Logging configures operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// ModelConfig mirrors the per-replicate simulation parameters.
type ModelConfig struct {
	Groups             int     `yaml:"groups"`
	GroupSize          int     `yaml:"group_size"`
	SelectionIntensity float64 `yaml:"selection_intensity"`
	InGroupProb        float64 `yaml:"in_group_prob"`
	ConflictRate       float64 `yaml:"conflict_rate"`
	MigrationRate      float64 `yaml:"migration_rate"`
	SplitProb          float64 `yaml:"split_prob"`
	ContestSteepness   float64 `yaml:"contest_steepness"`
	Benefit            float64 `yaml:"benefit"`
	Cost               float64 `yaml:"cost"`
	Mutant             string  `yaml:"mutant"`
	MaxSteps           int     `yaml:"max_steps"`
}

// RunConfig controls batch execution.
type RunConfig struct {
	// Runs is the number of independent replicates per batch.
	Runs int `yaml:"runs"`

	// Workers bounds replicate parallelism. Zero means one worker per
	// available CPU.
	Workers int `yaml:"workers"`

	// Seed is the master seed replicate seeds are derived from.
	Seed int64 `yaml:"seed"`
}

// SweepConfig names the swept parameter and its values.
type SweepConfig struct {
	Parameter string    `yaml:"parameter"`
	Values    []float64 `yaml:"values"`
}

// StorageConfig selects the experiment store and artifact location.
type StorageConfig struct {
	// Kind is "memory" or "sqlite".
	Kind string `yaml:"kind"`

	// DBPath is the SQLite database path. Ignored for the memory
	// store.
	DBPath string `yaml:"db_path"`

	// ResultsDir is where JSON and CSV artifacts are written. Empty
	// disables artifact output.
	ResultsDir string `yaml:"results_dir"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug" or
	// "warn".
	Level string `yaml:"level"`

	// File appends logs to the given path instead of stderr.
	File string `yaml:"file"`
}

// Default returns a Config with the baseline parameters: ten groups
// of ten, weak selection, rare conflict and migration, and a single
// altruist mutant.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Groups:             10,
			GroupSize:          10,
			SelectionIntensity: 0.1,
			InGroupProb:        0.8,
			ConflictRate:       0.025,
			MigrationRate:      0.01,
			SplitProb:          0.01,
			ContestSteepness:   0.5,
			Benefit:            2,
			Cost:               1,
			Mutant:             game.Altruist.String(),
			MaxSteps:           10000,
		},
		Run: RunConfig{
			Runs:    100,
			Workers: 0,
			Seed:    1,
		},
		Storage: StorageConfig{
			Kind:       "memory",
			ResultsDir: "results",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the given YAML file (when
// path is non-empty) and environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields
// absent from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the simulation cannot check itself.
func (c *Config) Validate() error {
	if c.Run.Runs <= 0 {
		return fmt.Errorf("run.runs must be positive, got %d", c.Run.Runs)
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("run.workers must not be negative, got %d", c.Run.Workers)
	}

	validKinds := map[string]bool{"memory": true, "sqlite": true}
	if !validKinds[c.Storage.Kind] {
		return fmt.Errorf("invalid storage kind: %s (valid: memory, sqlite)", c.Storage.Kind)
	}

	validLevels := map[string]bool{"": true, "info": true, "debug": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, or empty for default)", c.Logging.Level)
	}

	if c.Sweep.Parameter != "" {
		if _, err := experiment.ApplyParameter(sim.Config{}, c.Sweep.Parameter, 0); err != nil {
			return err
		}
	}

	_, err := c.SimConfig()
	return err
}

// SimConfig converts the model section to runtime simulation
// parameters and validates them.
func (c *Config) SimConfig() (sim.Config, error) {
	mutant, err := game.ParseStrategy(c.Model.Mutant)
	if err != nil {
		return sim.Config{}, err
	}
	cfg := sim.Config{
		Groups:             c.Model.Groups,
		GroupSize:          c.Model.GroupSize,
		SelectionIntensity: c.Model.SelectionIntensity,
		InGroupProb:        c.Model.InGroupProb,
		ConflictRate:       c.Model.ConflictRate,
		MigrationRate:      c.Model.MigrationRate,
		SplitProb:          c.Model.SplitProb,
		ContestSteepness:   c.Model.ContestSteepness,
		Benefit:            c.Model.Benefit,
		Cost:               c.Model.Cost,
		Mutant:             mutant,
		MaxSteps:           c.Model.MaxSteps,
	}
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LEARNDYN_STORE"); v != "" {
		cfg.Storage.Kind = v
	}
	if v := os.Getenv("LEARNDYN_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("LEARNDYN_RESULTS_DIR"); v != "" {
		cfg.Storage.ResultsDir = v
	}
	if v := os.Getenv("LEARNDYN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LEARNDYN_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Run.Seed = seed
		}
	}
}
