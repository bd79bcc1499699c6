package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the model.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Table    table.Styles
}

// DefaultStyles returns the green-on-dark look of the desktop form.
func DefaultStyles() Styles {
	green := lipgloss.Color("#00c000")

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(green).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(green).
		Bold(false)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(green).MarginBottom(1),
		Label:    lipgloss.NewStyle().Width(20).Foreground(green),
		Focused:  lipgloss.NewStyle().Width(20).Foreground(green).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(green).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Table:    tableStyles,
	}
}
