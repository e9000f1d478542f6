package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader. configPath may be empty,
// in which case the default location (~/.jobclock/config.yaml) is used.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if one exists
// 3. Override with environment variables (a .env file is honored)
func (l *Loader) Load() (*Config, error) {
	cfg := NewConfig()

	path := l.configPath
	if path == "" {
		path = filepath.Join(cfg.Database.Dir, "config.yaml")
	}
	if err := loadYAMLFile(cfg, path); err != nil {
		return nil, err
	}

	// A .env in the working directory is a convenience for development;
	// real environment variables win over it.
	_ = godotenv.Load()
	loadFromEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func loadFromEnvironment(cfg *Config) {
	if dir := os.Getenv("JC_DB_DIR"); dir != "" {
		cfg.Database.Dir = dir
	}
	if filename := os.Getenv("JC_DB_FILENAME"); filename != "" {
		cfg.Database.Filename = filename
	}
	if format := os.Getenv("JC_TIME_FORMAT"); format != "" {
		cfg.Time.Format = format
	}
	if owner := os.Getenv("JC_OWNER"); owner != "" {
		cfg.Owner.ID = owner
	}
	if interval := os.Getenv("JC_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			cfg.Session.TickInterval = d
		}
	}
}
