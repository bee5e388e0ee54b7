// Package config loads the smpe-admin configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file.
const (
	EnvDBPath   = "SMPE_DB_PATH"
	EnvLogLevel = "SMPE_LOG_LEVEL"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Database Database `yaml:"database"`
	Logging  Logging  `yaml:"logging"`
	Lookup   Lookup   `yaml:"lookup"`
	// Declarations is an optional declaration file overriding the
	// compiled-in declarations per query method.
	Declarations string    `yaml:"declarations,omitempty"`
	Scheduler    Scheduler `yaml:"scheduler"`
}

// Database configures the SQLite store.
type Database struct {
	Path string `yaml:"path"`
	Seed bool   `yaml:"seed"`
}

// Logging configures the zap logger.
type Logging struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Lookup configures lookup invocation.
type Lookup struct {
	// RateLimitRPS caps lookups per second; 0 disables the limit.
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
	Burst        int     `yaml:"burst"`
}

// Scheduler configures the task scheduler.
type Scheduler struct {
	Enabled  bool   `yaml:"enabled"`
	Timezone string `yaml:"timezone,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Database: Database{Path: "data/smpe.db", Seed: true},
		Logging:  Logging{Level: "info"},
		Lookup:   Lookup{Burst: 1},
		Scheduler: Scheduler{
			Enabled: true,
		},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

var levels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if !slices.Contains(levels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of %s", c.Logging.Level, strings.Join(levels, ", ")))
	}

	if c.Lookup.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("lookup.rate_limit_rps must not be negative, got %v", c.Lookup.RateLimitRPS))
	}

	if c.Lookup.Burst < 0 {
		errs = append(errs, fmt.Errorf("lookup.burst must not be negative, got %d", c.Lookup.Burst))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}
