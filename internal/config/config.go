// SPDX-License-Identifier: MIT

// Package config loads the lvpca run configuration from YAML and maps it onto
// pca options. Precedence, lowest first: Default, file, LVPCA_* environment,
// command-line flags (applied by the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpca/pca"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides.
const (
	EnvSolver   = "LVPCA_SOLVER"
	EnvWorkers  = "LVPCA_WORKERS"
	EnvLogLevel = "LVPCA_LOG_LEVEL"
)

// Config is the file form of a run.
type Config struct {
	Solver           string  `yaml:"solver"`
	Tolerance        float64 `yaml:"tolerance"`
	MaxRotations     int     `yaml:"max_rotations"`
	Workers          int     `yaml:"workers"`
	CenterProjection bool    `yaml:"center_projection"`
	CheckCentered    bool    `yaml:"check_centered"`
	LogLevel         string  `yaml:"log_level"`
	Output           string  `yaml:"output"`
}

// Default mirrors the pca package defaults; Output "" means stdout.
func Default() *Config {
	return &Config{
		Solver:       string(pca.DefaultSolver),
		Tolerance:    pca.DefaultTolerance,
		MaxRotations: pca.DefaultMaxRotations,
		Workers:      pca.DefaultWorkers,
		LogLevel:     zapcore.InfoLevel.String(),
	}
}

// Load reads path over Default and applies environment overrides.
// Unknown keys are rejected. Call Validate once any flag overrides are applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if err = cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv returns Default with environment overrides.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSolver); v != "" {
		c.Solver = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvWorkers, v, err)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks every field against what the pca options accept.
func (c *Config) Validate() error {
	if _, err := pca.ParseSolver(c.Solver); err != nil {
		return fmt.Errorf("%w: solver: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be finite and > 0, got %g", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxRotations < 0 {
		return fmt.Errorf("%w: max_rotations must be >= 0, got %d", ErrInvalidConfig, c.MaxRotations)
	}
	if c.Workers < -1 {
		return fmt.Errorf("%w: workers must be >= -1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return lvl, nil
}

// Options validates c and returns the equivalent pca options.
func (c *Config) Options() ([]pca.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []pca.Option{
		pca.WithSolver(pca.Solver(c.Solver)),
		pca.WithTolerance(c.Tolerance),
		pca.WithMaxRotations(c.MaxRotations),
		pca.WithWorkers(c.Workers),
	}
	if c.CenterProjection {
		opts = append(opts, pca.WithProjectCentered())
	}
	if c.CheckCentered {
		opts = append(opts, pca.WithCenteringCheck())
	}

	return opts, nil
}
