// SPDX-License-Identifier: MIT

// Package config loads the qrdemo driver configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
)

// Environment variables consulted by Load after the file is parsed.
const (
	EnvMethod    = "QRKIT_METHOD"
	EnvTolerance = "QRKIT_TOLERANCE"
	EnvLogLevel  = "QRKIT_LOG_LEVEL"
)

// MethodBoth runs every factorization method.
const MethodBoth = "both"

// Defaults applied to zero-valued fields.
const (
	DefaultMethod    = MethodBoth
	DefaultTolerance = 1e-9
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the driver configuration.
type Config struct {
	Method      string      `yaml:"method"`
	Tolerance   float64     `yaml:"tolerance"`
	SingularTol float64     `yaml:"singular_tol"`
	LogLevel    string      `yaml:"log_level"`
	Matrix      [][]float64 `yaml:"matrix,omitempty"`
	Hilbert     int         `yaml:"hilbert,omitempty"`
	MetricsFile string      `yaml:"metrics_file,omitempty"`
}

// ExampleMatrix is the 4×3 matrix used when no input is configured.
func ExampleMatrix() [][]float64 {
	return [][]float64{
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
		{1, 1, 1},
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

// Load reads path (when non-empty), applies environment overrides and
// defaults, and validates the result. A missing path is an error; an empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvMethod); v != "" {
		cfg.Method = v
	}
	if v := os.Getenv(EnvTolerance); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvTolerance, v, err)
		}
		cfg.Tolerance = tol
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Method == "" {
		c.Method = DefaultMethod
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.SingularTol == 0 {
		c.SingularTol = qr.DefaultSingularTolerance
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if len(c.Matrix) == 0 && c.Hilbert == 0 {
		c.Matrix = ExampleMatrix()
	}
}

// Validate checks every field. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Methods(); err != nil {
		errs = append(errs, err)
	}
	if !positiveFinite(c.Tolerance) {
		errs = append(errs, fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidConfig, c.Tolerance))
	}
	if !positiveFinite(c.SingularTol) {
		errs = append(errs, fmt.Errorf("%w: singular_tol must be positive, got %v", ErrInvalidConfig, c.SingularTol))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err))
	}
	if c.Hilbert < 0 {
		errs = append(errs, fmt.Errorf("%w: hilbert must be >= 0, got %d", ErrInvalidConfig, c.Hilbert))
	}
	if c.Hilbert == 0 {
		if _, err := matrix.NewDenseFromRows(c.Matrix); err != nil {
			errs = append(errs, fmt.Errorf("%w: matrix: %w", ErrInvalidConfig, err))
		}
	}

	return errors.Join(errs...)
}

// Methods expands Method into the factorizations to run.
func (c *Config) Methods() ([]qr.Method, error) {
	if strings.EqualFold(strings.TrimSpace(c.Method), MethodBoth) {
		return []qr.Method{qr.GramSchmidtMethod, qr.GivensMethod}, nil
	}
	m, err := qr.ParseMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: method: %w", ErrInvalidConfig, err)
	}

	return []qr.Method{m}, nil
}

// Input builds the matrix to factorize: the Hilbert matrix when Hilbert > 0,
// otherwise Matrix.
func (c *Config) Input() (*matrix.Dense, error) {
	if c.Hilbert > 0 {
		return matrix.NewHilbert(c.Hilbert)
	}

	return matrix.NewDenseFromRows(c.Matrix)
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
