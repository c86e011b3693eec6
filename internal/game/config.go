package game

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed      = "SNAKEBAND_SEED"
	EnvTheme     = "SNAKEBAND_THEME"
	EnvSound     = "SNAKEBAND_SOUND"
	EnvSwipeMin  = "SNAKEBAND_SWIPE_MIN"
	EnvTelemetry = "SNAKEBAND_TELEMETRY"
	EnvLogFile   = "SNAKEBAND_LOG"
)

// DefaultSwipeMin is the drag distance, in terminal columns, a gesture must
// exceed on its dominant axis. A row counts as rowColumns columns, so the
// default asks for four columns across or two rows down.
const DefaultSwipeMin = 3

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Theme is the ID of the color theme. Empty selects the default.
	Theme string

	// Sound enables audio cues.
	Sound bool

	// SwipeMin is the minimum drag distance for a swipe, in columns.
	SwipeMin int

	// Telemetry enables OTLP trace export.
	Telemetry bool

	// LogFile receives log output while the game owns the terminal.
	// Empty discards it.
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Sound:    true,
		SwipeMin: DefaultSwipeMin,
	}
}

// LoadConfig reads configuration from the process environment.
func LoadConfig() (Config, error) {
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv reads configuration through lookup, starting from
// DefaultConfig.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvTheme); ok {
		cfg.Theme = v
	}
	if v, ok := lookup(EnvSound); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSound, err)
		}
		cfg.Sound = on
	}
	if v, ok := lookup(EnvSwipeMin); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSwipeMin, err)
		}
		if n < 0 {
			return cfg, fmt.Errorf("%s: must not be negative, got %d", EnvSwipeMin, n)
		}
		cfg.SwipeMin = n
	}
	if v, ok := lookup(EnvTelemetry); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTelemetry, err)
		}
		cfg.Telemetry = on
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}

	return cfg, nil
}
