package cli

import (
	"github.com/spf13/cobra"

	"property-tax-tracker/internal/app"
	"property-tax-tracker/internal/logger"
)

// NewGUICommand creates the gui command.
func NewGUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop form (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}
}

func runGUI(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Logging)
	if err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}
	defer closer.Close()

	application, err := app.NewApplication(cmd.Context(), app.Options{
		Config: cfg,
		Logger: log,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "start application", err)
	}

	if err := application.Run(); err != nil {
		return WrapExitError(ExitFailure, "application error", err)
	}
	return nil
}
