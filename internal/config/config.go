package config

import (
	"os"
	"path/filepath"
	"time"

	"jobclock/internal/timefmt"
)

// Config holds all configuration options for the jobclock application
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Time     TimeConfig     `yaml:"time"`
	Owner    OwnerConfig    `yaml:"owner"`
	Session  SessionConfig  `yaml:"session"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `yaml:"dir" env:"JC_DB_DIR"`
	Filename string `yaml:"filename" env:"JC_DB_FILENAME"`
}

// TimeConfig holds the user-facing time format setting
type TimeConfig struct {
	Format string `yaml:"format" env:"JC_TIME_FORMAT"` // "24h" or "12h"
}

// OwnerConfig identifies the user the store is scoped to
type OwnerConfig struct {
	ID string `yaml:"id" env:"JC_OWNER"`
}

// SessionConfig holds timer session configuration. The tick interval is
// env-only (JC_TICK_INTERVAL, a Go duration string); YAML has no native
// duration representation.
type SessionConfig struct {
	TickInterval time.Duration `yaml:"-" env:"JC_TICK_INTERVAL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:      filepath.Join(homeDir, ".jobclock"),
			Filename: "jobclock.db",
		},
		Time: TimeConfig{
			Format: string(timefmt.Format24h),
		},
		Owner: OwnerConfig{
			ID: "local-user",
		},
		Session: SessionConfig{
			TickInterval: time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// TimeFormat returns the configured display format
func (c *Config) TimeFormat() timefmt.Format {
	return timefmt.Format(c.Time.Format)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if !c.TimeFormat().IsValid() {
		return &ConfigError{Field: "time.format", Message: "time format must be 24h or 12h"}
	}
	if c.Owner.ID == "" {
		return &ConfigError{Field: "owner.id", Message: "owner id cannot be empty"}
	}
	if c.Session.TickInterval <= 0 {
		return &ConfigError{Field: "session.tick_interval", Message: "tick interval must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
