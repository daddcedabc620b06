// Package config loads run settings from the environment, optionally seeded
// from a .env file. Command-line flags override these values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/sixdegrees/degrees"
	"github.com/katalvlaran/sixdegrees/logger"
)

// Environment variable names.
const (
	EnvReference   = "BACON_REFERENCE"
	EnvEnv         = "BACON_ENV"
	EnvWorkers     = "BACON_WORKERS"
	EnvMetricsFile = "BACON_METRICS_FILE"
	EnvShowPath    = "BACON_SHOW_PATH"
	EnvMaxDepth    = "BACON_MAX_DEPTH"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all run configuration.
type Config struct {
	// Reference is the actor distances are measured from.
	Reference string
	// Env selects the logger flavour ("production" or "development").
	Env string
	// Workers > 1 answers queries in parallel.
	Workers int
	// MaxDepth bounds the search; 0 means unlimited.
	MaxDepth int
	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string
	// ShowPath prints the chain of co-stars after each score.
	ShowPath bool
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	return FromEnv()
}

// LoadFile is Load with an explicit .env path, which must exist.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (*Config, error) {
	workers, err := getEnvInt(EnvWorkers, 1)
	if err != nil {
		return nil, err
	}
	maxDepth, err := getEnvInt(EnvMaxDepth, 0)
	if err != nil {
		return nil, err
	}
	showPath, err := getEnvBool(EnvShowPath, false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Reference:   getEnv(EnvReference, degrees.DefaultReference),
		Env:         getEnv(EnvEnv, logger.EnvDevelopment),
		Workers:     workers,
		MaxDepth:    maxDepth,
		MetricsFile: getEnv(EnvMetricsFile, ""),
		ShowPath:    showPath,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Reference == "" {
		return fmt.Errorf("%w: reference actor is empty", ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1 (got %d)", ErrInvalid, c.Workers)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must be ≥ 0 (got %d)", ErrInvalid, c.MaxDepth)
	}
	if c.Env != logger.EnvProduction && c.Env != logger.EnvDevelopment {
		return fmt.Errorf("%w: env %q", ErrInvalid, c.Env)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
	}
	return v, nil
}
