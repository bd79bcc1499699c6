package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the four record action buttons
type Toolbar struct {
	container    *fyne.Container
	addButton    *widget.Button
	editButton   *widget.Button
	deleteButton *widget.Button
	viewButton   *widget.Button

	// Event handlers
	addHandler    func()
	editHandler   func()
	deleteHandler func()
	viewHandler   func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

// createComponents initializes all toolbar buttons
func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), func() { t.fire(t.addHandler) })
	t.addButton.Importance = widget.HighImportance

	t.editButton = widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() { t.fire(t.editHandler) })

	t.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() { t.fire(t.deleteHandler) })
	t.deleteButton.Importance = widget.DangerImportance

	t.viewButton = widget.NewButtonWithIcon("View", theme.ViewRefreshIcon(), func() { t.fire(t.viewHandler) })
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewGridWithColumns(4,
		t.addButton,
		t.editButton,
		t.deleteButton,
		t.viewButton,
	)
}

func (t *Toolbar) fire(handler func()) {
	if handler != nil {
		handler()
	}
}

// SetAddHandler sets the handler for the Add button
func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

// SetEditHandler sets the handler for the Edit button
func (t *Toolbar) SetEditHandler(handler func()) {
	t.editHandler = handler
}

// SetDeleteHandler sets the handler for the Delete button
func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

// SetViewHandler sets the handler for the View button
func (t *Toolbar) SetViewHandler(handler func()) {
	t.viewHandler = handler
}

// Buttons returns Add, Edit, Delete and View in that order
func (t *Toolbar) Buttons() []*widget.Button {
	return []*widget.Button{t.addButton, t.editButton, t.deleteButton, t.viewButton}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
