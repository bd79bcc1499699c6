package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "property_tax.db", cfg.Database.Path)
	assert.Equal(t, DriverCGO, cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.UI.RefreshOnStart)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: sqlite\nlogging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverPureGo, cfg.Database.Driver)
	assert.Equal(t, "property_tax.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("databse:\n  path: x.db\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Database.Path = "/var/lib/tax/records.db"
	cfg.Logging.Format = "json"
	cfg.UI.RefreshOnStart = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvDatabasePath, "/tmp/env.db")
	t.Setenv(EnvDatabaseDriver, DriverPureGo)
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
	assert.Equal(t, DriverPureGo, cfg.Database.Driver)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestConfig_ApplyEnvIgnoresEmpty(t *testing.T) {
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty path", func(c *Config) { c.Database.Path = " " }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
