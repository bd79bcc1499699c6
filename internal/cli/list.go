package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"property-tax-tracker/internal/app"
	"property-tax-tracker/internal/logger"
	"property-tax-tracker/internal/models"
)

var listHeaders = []string{"ID", "ADDRESS", "ASSESSMENT", "PAYMENT", "DATE"}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every record in id order",
		Long: `Print every record in id order.

Output is a bordered table on a terminal and tab-separated lines
otherwise, so it can be piped into cut or awk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootOpts)
		},
	}
}

func runList(cmd *cobra.Command, rootOpts *RootOptions) error {
	cfg, err := resolveConfig(rootOpts)
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

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := s.ListAll(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "list records", err)
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		return writeTable(out, records)
	}
	return writePlain(out, records)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func recordCells(rec models.PropertyTaxRecord) []string {
	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.Address,
		models.FormatAmount(rec.AssessmentAmount),
		models.FormatAmount(rec.PaymentAmount),
		rec.PaymentDate,
	}
}

func writePlain(w io.Writer, records []models.PropertyTaxRecord) error {
	var b strings.Builder
	b.WriteString(strings.Join(listHeaders, "\t"))
	b.WriteByte('\n')
	for _, rec := range records {
		b.WriteString(strings.Join(recordCells(rec), "\t"))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(w io.Writer, records []models.PropertyTaxRecord) error {
	green := lipgloss.Color("#00c000")
	header := lipgloss.NewStyle().Bold(true).Foreground(green).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	amount := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(green)).
		Headers(listHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 2 || col == 3:
				return amount
			default:
				return cell
			}
		})
	for _, rec := range records {
		t.Row(recordCells(rec)...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
