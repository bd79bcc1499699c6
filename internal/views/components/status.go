package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action result and the record count
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.countLabel = widget.NewLabel("Records: --")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewSeparator(), sb.countLabel),
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetRecordCount updates the record count display
func (sb *StatusBar) SetRecordCount(n int) {
	sb.countLabel.SetText(fmt.Sprintf("Records: %d", n))
}

// GetRecordCount returns the record count text
func (sb *StatusBar) GetRecordCount() string {
	return sb.countLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
