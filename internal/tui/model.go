// Package tui is a terminal front end for the record form. It binds to the
// same controller as the desktop window.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"property-tax-tracker/internal/controllers"
	"property-tax-tracker/internal/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RecordSource supplies the rows shown in the table.
type RecordSource interface {
	ListAll(ctx context.Context) ([]models.PropertyTaxRecord, error)
}

const (
	fieldAddress = iota
	fieldAssessment
	fieldPayment
	fieldDate
	fieldCount

	focusTable = fieldCount
)

var fieldLabels = [fieldCount]string{
	"Property Address:",
	"Assessment Amount:",
	"Payment Amount:",
	"Payment Date:",
}

// Model is the Bubble Tea model. It is used through a pointer so the
// controller and the program share one instance.
type Model struct {
	source RecordSource

	inputs   []textinput.Model
	table    table.Model
	rows     []models.PropertyTaxRecord
	focus    int
	selected int // row index, -1 when nothing is selected

	status  string
	errText string
	width   int

	createHandler func()
	editHandler   func()
	deleteHandler func()
	viewHandler   func()

	styles Styles
}

// New creates the model with an empty table; nothing is listed until the
// first refresh.
func New(source RecordSource) *Model {
	styles := DefaultStyles()

	inputs := make([]textinput.Model, fieldCount)
	placeholders := [fieldCount]string{"123 Main St", "0.00", "0.00", "2024-01-01"}
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Width = 40
		inputs[i] = in
	}
	inputs[fieldAddress].Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Address", Width: 30},
			{Title: "Assessment", Width: 14},
			{Title: "Payment", Width: 14},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(false),
		table.WithHeight(10),
		table.WithStyles(styles.Table),
	)

	return &Model{
		source:   source,
		inputs:   inputs,
		table:    t,
		rows:     make([]models.PropertyTaxRecord, 0),
		selected: -1,
		status:   "Ready",
		styles:   styles,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			if m.focus != focusTable || msg.String() == "tab" {
				return m, m.setFocus((m.focus + 1) % (fieldCount + 1))
			}
		case "shift+tab", "up":
			if m.focus != focusTable || msg.String() == "shift+tab" {
				return m, m.setFocus((m.focus + fieldCount) % (fieldCount + 1))
			}
		case "ctrl+a":
			fire(m.createHandler)
			return m, nil
		case "ctrl+e":
			fire(m.editHandler)
			return m, nil
		case "ctrl+d":
			fire(m.deleteHandler)
			return m, nil
		case "ctrl+r":
			fire(m.viewHandler)
			return m, nil
		case "enter":
			if m.focus == focusTable {
				m.selectCursor()
				return m, nil
			}
			return m, m.setFocus(m.focus + 1)
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTable {
		m.table, cmd = m.table.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Property Tax Assessment and Payment Tracking"))
	b.WriteString("\n")

	for i, in := range m.inputs {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.Focused
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fieldLabels[i]), in.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if id, ok := m.SelectedID(); ok {
		b.WriteString(m.styles.Selected.Render(fmt.Sprintf("Selected: record %d", id)))
	} else {
		b.WriteString(m.styles.Status.Render("Selected: none"))
	}
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText))
	} else {
		b.WriteString(m.styles.Status.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render("tab: next field • enter: select row • ctrl+a add • ctrl+e edit • ctrl+d delete • ctrl+r view • esc quit"))
	return b.String()
}

func (m *Model) setFocus(target int) tea.Cmd {
	if target > focusTable {
		target = focusTable
	}
	m.focus = target

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if target == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return cmd
}

func (m *Model) selectCursor() {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return
	}
	m.selected = cursor
	m.status = fmt.Sprintf("Record %d selected", m.rows[cursor].ID)
	m.errText = ""
}

func fire(handler func()) {
	if handler != nil {
		handler()
	}
}

// Focused reports which field has focus; fieldCount means the table.
func (m *Model) Focused() int {
	return m.focus
}

// SetCreateHandler binds ctrl+a.
func (m *Model) SetCreateHandler(h func()) { m.createHandler = h }

// SetEditHandler binds ctrl+e.
func (m *Model) SetEditHandler(h func()) { m.editHandler = h }

// SetDeleteHandler binds ctrl+d.
func (m *Model) SetDeleteHandler(h func()) { m.deleteHandler = h }

// SetViewHandler binds ctrl+r.
func (m *Model) SetViewHandler(h func()) { m.viewHandler = h }

// Values returns the raw text of the four fields.
func (m *Model) Values() controllers.FieldValues {
	return controllers.FieldValues{
		Address:     m.inputs[fieldAddress].Value(),
		Assessment:  m.inputs[fieldAssessment].Value(),
		Payment:     m.inputs[fieldPayment].Value(),
		PaymentDate: m.inputs[fieldDate].Value(),
	}
}

// Clear empties the four fields.
func (m *Model) Clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}

// Refresh replaces the table rows with a fresh snapshot and clears the selection.
func (m *Model) Refresh(ctx context.Context) error {
	rows, err := m.source.ListAll(ctx)
	if err != nil {
		return err
	}

	m.rows = rows
	m.selected = -1

	tableRows := make([]table.Row, 0, len(rows))
	for _, rec := range rows {
		tableRows = append(tableRows, table.Row{
			strconv.FormatInt(rec.ID, 10),
			rec.Address,
			models.FormatAmount(rec.AssessmentAmount),
			models.FormatAmount(rec.PaymentAmount),
			rec.PaymentDate,
		})
	}
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
	return nil
}

// SelectedID returns the id of the selected row.
func (m *Model) SelectedID() (int64, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return 0, false
	}
	return m.rows[m.selected].ID, true
}

// Rows returns a copy of the displayed records.
func (m *Model) Rows() []models.PropertyTaxRecord {
	return append([]models.PropertyTaxRecord(nil), m.rows...)
}

// UpdateStatus replaces the status line.
func (m *Model) UpdateStatus(status string) {
	m.status = status
	m.errText = ""
}

// ShowError shows an error in place of the status line until the next status.
func (m *Model) ShowError(title string, err error) {
	m.errText = fmt.Sprintf("%s: %v", title, err)
}

// Status returns the status or error line currently shown.
func (m *Model) Status() string {
	if m.errText != "" {
		return m.errText
	}
	return m.status
}

var _ controllers.View = (*Model)(nil)
var _ controllers.ActionBinder = (*Model)(nil)
