// Package cli holds the cobra command tree of the property-tax-tracker binary.
package cli

import (
	"github.com/spf13/cobra"

	"property-tax-tracker/internal/app"
	"property-tax-tracker/internal/config"
)

// RootOptions holds the persistent flags shared by every command.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Driver     string
	LogLevel   string
}

// NewRootCommand creates the root command. Run without a subcommand it opens
// the desktop window.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "property-tax-tracker",
		Short:         app.AppName,
		Long:          "Record property tax assessments and payments in a local SQLite database.",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite database file (overrides config and "+config.EnvDatabasePath+")")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "database driver: "+config.DriverCGO+" or "+config.DriverPureGo)
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(NewGUICommand(opts))
	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolveConfig layers the config file, the environment and the flags, in
// that order, and validates the result.
func resolveConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	cfg.ApplyEnv()

	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	if opts.Driver != "" {
		cfg.Database.Driver = opts.Driver
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return cfg, nil
}
