// Package config loads runtime settings from the environment. A .env file in
// the working directory is read first if present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

// Environment variable names.
const (
	EnvLogLevel = "OTTOPANTRY_LOG_LEVEL"
	EnvLogFile  = "OTTOPANTRY_LOG_FILE"
	EnvSeed     = "OTTOPANTRY_SEED"
	EnvToday    = "OTTOPANTRY_TODAY"
	EnvCurrency = "OTTOPANTRY_CURRENCY"
)

// Defaults.
const (
	DefaultLogFile  = ".ottopantry/ottopantry.log"
	DefaultCurrency = "kr"
)

// Config holds the settings the binary needs.
type Config struct {
	LogLevel logger.Level
	LogFile  string    // "stderr" logs to the console
	Seed     bool      // preload the sample pantry and cookbook
	Today    time.Time // zero means use the wall clock
	Currency string
}

// Load reads .env (if any) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel: logger.LevelNormal,
		LogFile:  DefaultLogFile,
		Seed:     true,
		Currency: DefaultCurrency,
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvToday); v != "" {
		today, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvToday, err)
		}
		cfg.Today = today
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	return cfg, nil
}

// Clock returns the "today" function implied by the config.
func (c Config) Clock() func() time.Time {
	if c.Today.IsZero() {
		return time.Now
	}
	pinned := c.Today
	return func() time.Time { return pinned }
}
