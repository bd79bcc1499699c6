package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"property-tax-tracker/internal/app"
	"property-tax-tracker/internal/controllers"
	"property-tax-tracker/internal/logger"
	"property-tax-tracker/internal/timing"
	"property-tax-tracker/internal/tui"
)

// NewTUICommand creates the tui command.
func NewTUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the form in the terminal",
		Long: `Run the same add, edit, delete and view form inside the terminal.

Logs go to logging.file when one is configured and are discarded otherwise,
so they never draw over the screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	log, closer, err := logger.NewFileOnly(cfg.Logging)
	if err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}
	defer closer.Close()

	s, err := app.OpenStore(cfg.Database, log)
	if err != nil {
		return WrapExitError(ExitFailure, "open record store", err)
	}
	defer s.Close()

	tracker := timing.NewTracker()
	timed := timing.WrapStore(s, tracker)
	defer func() {
		for _, stat := range tracker.Stats() {
			log.Debug("TUI", "store operation timings", map[string]interface{}{
				"operation": stat.Operation,
				"count":     stat.Count,
				"mean":      stat.Mean().String(),
				"max":       stat.Max.String(),
			})
		}
	}()

	ctx := cmd.Context()
	model := tui.New(timed)
	controller := controllers.NewFormController(ctx, timed, log)
	controller.SetView(model)

	if cfg.UI.RefreshOnStart {
		controller.SubmitView()
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return WrapExitError(ExitFailure, "terminal UI", err)
	}
	return nil
}
