package views

import (
	"context"

	"property-tax-tracker/internal/controllers"
	"property-tax-tracker/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// WindowTitle is the title of the main window
const WindowTitle = "Property Tax Assessment and Payment Tracking"

// MainView is the application window: the record form, the action
// toolbar, the record table and a status bar.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.FormPanel
	toolbar       *components.Toolbar
	table         *components.RecordTable
	statusBar     *components.StatusBar
}

// NewMainView creates the main view and sets it as the window content
func NewMainView(window fyne.Window, source components.RecordSource) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(source)
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(source components.RecordSource) {
	mv.form = components.NewFormPanel()
	mv.toolbar = components.NewToolbar()
	mv.table = components.NewRecordTable(source)
	mv.statusBar = components.NewStatusBar()

	mv.table.SetOnChanged(mv.statusBar.SetRecordCount)
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.form.GetContainer(),
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,                      // top
		mv.statusBar.GetContainer(), // bottom
		nil,                          // left
		nil,                          // right
		mv.table.Widget(),            // center
	)

	mv.window.SetTitle(WindowTitle)
	mv.window.SetContent(mv.mainContainer)
}

// Handler setters - called by the controller

// SetCreateHandler binds the Add button
func (mv *MainView) SetCreateHandler(handler func()) {
	mv.toolbar.SetAddHandler(handler)
}

// SetEditHandler binds the Edit button
func (mv *MainView) SetEditHandler(handler func()) {
	mv.toolbar.SetEditHandler(handler)
}

// SetDeleteHandler binds the Delete button
func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.toolbar.SetDeleteHandler(handler)
}

// SetViewHandler binds the View button
func (mv *MainView) SetViewHandler(handler func()) {
	mv.toolbar.SetViewHandler(handler)
}

// Form contract

// Values returns the raw text of the four fields
func (mv *MainView) Values() controllers.FieldValues {
	return controllers.FieldValues{
		Address:     mv.form.Address(),
		Assessment:  mv.form.Assessment(),
		Payment:     mv.form.Payment(),
		PaymentDate: mv.form.Date(),
	}
}

// Clear empties the four fields
func (mv *MainView) Clear() {
	mv.form.Clear()
}

// List view contract

// Refresh reloads the record table from the store
func (mv *MainView) Refresh(ctx context.Context) error {
	return mv.table.Refresh(ctx)
}

// SelectedID returns the id of the selected table row
func (mv *MainView) SelectedID() (int64, bool) {
	return mv.table.SelectedID()
}

// Notifier contract

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowError displays an error dialog. Fyne titles error dialogs itself; the
// title is already on the status bar.
func (mv *MainView) ShowError(title string, err error) {
	d := dialog.NewError(err, mv.window)
	d.Show()
}

// Accessors used by the application and tests

// GetForm returns the form component
func (mv *MainView) GetForm() *components.FormPanel {
	return mv.form
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetTable returns the record table component
func (mv *MainView) GetTable() *components.RecordTable {
	return mv.table
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view; call from the main goroutine
func (mv *MainView) Show() {
	mv.window.Show()
}

var _ controllers.View = (*MainView)(nil)
var _ controllers.ActionBinder = (*MainView)(nil)
