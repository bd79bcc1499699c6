package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"property-tax-tracker/internal/app"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", app.AppName, app.AppVersion, runtime.Version())
		},
	}
}
