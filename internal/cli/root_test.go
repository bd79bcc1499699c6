package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-tax-tracker/internal/app"
	"property-tax-tracker/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvDatabasePath, "")
	t.Setenv(config.EnvDatabaseDriver, "")
	t.Setenv(config.EnvLogLevel, "")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "property-tax-tracker", cmd.Use)
	assert.Equal(t, app.AppVersion, cmd.Version)
	assert.NotNil(t, cmd.RunE, "bare invocation opens the window")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"gui", "tui", "list", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"config", "db", "driver", "log-level"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Empty(t, flag.DefValue, name)
	}
	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
}

func TestResolveConfig_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	file := config.DefaultConfig()
	file.Database.Path = filepath.Join(dir, "from-file.db")
	file.Logging.Level = "debug"
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, file.Save(cfgPath))

	t.Run("file", func(t *testing.T) {
		cfg, err := resolveConfig(&RootOptions{ConfigPath: cfgPath})
		require.NoError(t, err)
		assert.Equal(t, file.Database.Path, cfg.Database.Path)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv(config.EnvDatabasePath, filepath.Join(dir, "from-env.db"))
		cfg, err := resolveConfig(&RootOptions{ConfigPath: cfgPath})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "from-env.db"), cfg.Database.Path)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv(config.EnvDatabasePath, filepath.Join(dir, "from-env.db"))
		cfg, err := resolveConfig(&RootOptions{
			ConfigPath: cfgPath,
			DBPath:     filepath.Join(dir, "from-flag.db"),
			Driver:     config.DriverPureGo,
			LogLevel:   "error",
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "from-flag.db"), cfg.Database.Path)
		assert.Equal(t, config.DriverPureGo, cfg.Database.Driver)
		assert.Equal(t, "error", cfg.Logging.Level)
	})
}

func TestResolveConfig_Errors(t *testing.T) {
	clearEnv(t)

	_, err := resolveConfig(&RootOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = resolveConfig(&RootOptions{Driver: "postgres"})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "postgres")
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), app.AppName+" "+app.AppVersion)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	wrapped := WrapExitError(ExitCommandError, "bad flag", os.ErrInvalid)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.ErrorIs(t, wrapped, os.ErrInvalid)
	assert.Equal(t, "bad flag: invalid argument", wrapped.Error())
}
