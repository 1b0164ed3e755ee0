// Package config loads bibletrack settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfig        = "BIBLETRACK_CONFIG"
	EnvDB            = "BIBLETRACK_DB"
	EnvExportDir     = "BIBLETRACK_EXPORT_DIR"
	EnvLog           = "BIBLETRACK_LOG"
	EnvActivityLimit = "BIBLETRACK_ACTIVITY_LIMIT"

	dirName              = ".bibletrack"
	defaultActivityLimit = 10
)

// Config holds all user-tunable settings.
type Config struct {
	DBPath        string `yaml:"db_path"`
	ExportDir     string `yaml:"export_dir"`
	LogUseCases   bool   `yaml:"log_use_cases"`
	LogLevel      string `yaml:"log_level"` // info or debug
	ActivityLimit int    `yaml:"activity_limit"`
}

// DefaultConfig keeps everything under ~/.bibletrack and exports to the
// working directory. Logging is off.
func DefaultConfig() *Config {
	base := baseDir()
	return &Config{
		DBPath:        filepath.Join(base, "bibletrack.db"),
		ExportDir:     ".",
		LogLevel:      "info",
		ActivityLimit: defaultActivityLimit,
	}
}

// DefaultPath returns $BIBLETRACK_CONFIG or ~/.bibletrack/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(baseDir(), "config.yaml")
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Validate normalizes empty values and rejects unusable ones.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if c.ActivityLimit <= 0 {
		c.ActivityLimit = defaultActivityLimit
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		c.LogLevel = "info"
	case "debug":
		c.LogLevel = "debug"
	default:
		return fmt.Errorf("log_level %q: expected info or debug", c.LogLevel)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	if c.LogLevel == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// applyEnvOverrides applies environment variable overrides.
// BIBLETRACK_LOG takes a boolean, or "debug" to enable debug-level logging.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		if strings.EqualFold(v, "debug") {
			c.LogUseCases = true
			c.LogLevel = "debug"
		} else if b, err := strconv.ParseBool(v); err == nil {
			c.LogUseCases = b
		}
	}
	if v := os.Getenv(EnvActivityLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.ActivityLimit = n
		}
	}
}
