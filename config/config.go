// Package config loads gridpath settings from the environment, optionally
// seeded from .env files.
//
// Variables (all optional):
//
//	GRIDPATH_STEP_COST   forward step cost            (default 1)
//	GRIDPATH_TURN_COST   90° turn cost                (default 1000)
//	GRIDPATH_HEADING     initial facing               (default right)
//	GRIDPATH_LOG_LEVEL   logrus level name            (default info)
//	GRIDPATH_WORKERS     concurrent searches, 0 = one per input (default 0)
//	GRIDPATH_BYTE_SIZE   byte-fall grid side          (default 71)
//	GRIDPATH_BYTE_LIMIT  bytes fallen for step count  (default 1024)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvStepCost  = "GRIDPATH_STEP_COST"
	EnvTurnCost  = "GRIDPATH_TURN_COST"
	EnvHeading   = "GRIDPATH_HEADING"
	EnvLogLevel  = "GRIDPATH_LOG_LEVEL"
	EnvWorkers   = "GRIDPATH_WORKERS"
	EnvByteSize  = "GRIDPATH_BYTE_SIZE"
	EnvByteLimit = "GRIDPATH_BYTE_LIMIT"
)

// Config holds the application's configuration values.
type Config struct {
	StepCost  int64          // Cost of a forward step
	TurnCost  int64          // Cost of a 90° turn
	Heading   grid.Direction // Facing at the start cell
	LogLevel  logrus.Level   // Minimum level logged by the CLI
	Workers   int            // Concurrent searches; 0 means unlimited
	ByteSize  int            // Side of the byte-fall grid
	ByteLimit int            // Bytes fallen before counting steps
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		StepCost:  pathfind.DefaultStepCost,
		TurnCost:  pathfind.DefaultTurnCost,
		Heading:   grid.Right,
		LogLevel:  logrus.InfoLevel,
		Workers:   0,
		ByteSize:  71,
		ByteLimit: 1024,
	}
}

// Load reads the given .env files (".env" when none is given) into the
// process environment without overriding variables already set, then
// builds a Config from the environment. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error
	if cfg.StepCost, err = int64Env(EnvStepCost, cfg.StepCost); err != nil {
		return Config{}, err
	}
	if cfg.TurnCost, err = int64Env(EnvTurnCost, cfg.TurnCost); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvHeading); ok {
		if cfg.Heading, err = grid.ParseDirection(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvHeading, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvLogLevel, err)
		}
	}
	if cfg.Workers, err = intEnv(EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.ByteSize, err = intEnv(EnvByteSize, cfg.ByteSize); err != nil {
		return Config{}, err
	}
	if cfg.ByteLimit, err = intEnv(EnvByteLimit, cfg.ByteLimit); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that parsing alone cannot catch.
func (c Config) Validate() error {
	switch {
	case c.StepCost <= 0:
		return fmt.Errorf("%w: %s must be positive (%d)", ErrInvalidValue, EnvStepCost, c.StepCost)
	case c.TurnCost < 0:
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalidValue, EnvTurnCost, c.TurnCost)
	case c.Workers < 0:
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalidValue, EnvWorkers, c.Workers)
	case c.ByteSize <= 0:
		return fmt.Errorf("%w: %s must be positive (%d)", ErrInvalidValue, EnvByteSize, c.ByteSize)
	case c.ByteLimit < 0:
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalidValue, EnvByteLimit, c.ByteLimit)
	}
	return nil
}

// SearchOptions maps the cost model onto pathfind options.
func (c Config) SearchOptions() []pathfind.Option {
	return []pathfind.Option{
		pathfind.WithStepCost(c.StepCost),
		pathfind.WithTurnCost(c.TurnCost),
		pathfind.WithHeading(c.Heading),
	}
}

// int64Env retrieves an environment variable as int64 or returns def if not set.
func int64Env(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	return n, nil
}

// intEnv retrieves an environment variable as int or returns def if not set.
func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	return n, nil
}
