package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverCGO    = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPureGo = "sqlite"  // modernc.org/sqlite
)

// Environment variables consulted by ApplyEnv
const (
	EnvDatabasePath   = "PROPERTY_TAX_DB"
	EnvDatabaseDriver = "PROPERTY_TAX_DRIVER"
	EnvLogLevel       = "LOG_LEVEL"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Window   WindowConfig   `yaml:"window"`
	UI       UIConfig       `yaml:"ui"`
}

// DatabaseConfig locates the record store.
type DatabaseConfig struct {
	Path   string `yaml:"path"`
	Driver string `yaml:"driver"` // sqlite3, sqlite
}

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // optional, appended to in addition to stderr
}

// WindowConfig sets the initial size of the main window.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// UIConfig holds front-end behaviour switches.
type UIConfig struct {
	RefreshOnStart bool `yaml:"refresh_on_start"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:   "property_tax.db",
			Driver: DriverCGO,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  900,
			Height: 640,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults. An empty path
// returns the defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvDatabaseDriver); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path must not be empty")
	}

	switch c.Database.Driver {
	case DriverCGO, DriverPureGo:
	default:
		return fmt.Errorf("database.driver %q: must be %s or %s", c.Database.Driver, DriverCGO, DriverPureGo)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q: must be console or json", c.Logging.Format)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %.0fx%.0f must be positive", c.Window.Width, c.Window.Height)
	}

	return nil
}
