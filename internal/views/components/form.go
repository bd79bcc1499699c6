package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// FormPanel holds the four editable record fields
type FormPanel struct {
	container       *fyne.Container
	addressEntry    *widget.Entry
	assessmentEntry *widget.Entry
	paymentEntry    *widget.Entry
	dateEntry       *widget.Entry
}

// NewFormPanel creates a new form panel component
func NewFormPanel() *FormPanel {
	fp := &FormPanel{}
	fp.createComponents()
	fp.buildLayout()
	return fp
}

func (fp *FormPanel) createComponents() {
	fp.addressEntry = widget.NewEntry()
	fp.addressEntry.SetPlaceHolder("123 Main St")

	fp.assessmentEntry = widget.NewEntry()
	fp.assessmentEntry.SetPlaceHolder("0.00")

	fp.paymentEntry = widget.NewEntry()
	fp.paymentEntry.SetPlaceHolder("0.00")

	fp.dateEntry = widget.NewEntry()
	fp.dateEntry.SetPlaceHolder("2024-01-01")
}

func (fp *FormPanel) buildLayout() {
	fp.container = container.New(layout.NewFormLayout(),
		widget.NewLabel("Property Address:"), fp.addressEntry,
		widget.NewLabel("Assessment Amount:"), fp.assessmentEntry,
		widget.NewLabel("Payment Amount:"), fp.paymentEntry,
		widget.NewLabel("Payment Date:"), fp.dateEntry,
	)
}

// Address, Assessment, Payment and Date return the raw field text
func (fp *FormPanel) Address() string    { return fp.addressEntry.Text }
func (fp *FormPanel) Assessment() string { return fp.assessmentEntry.Text }
func (fp *FormPanel) Payment() string    { return fp.paymentEntry.Text }
func (fp *FormPanel) Date() string       { return fp.dateEntry.Text }

// SetValues fills all four fields
func (fp *FormPanel) SetValues(address, assessment, payment, date string) {
	fp.addressEntry.SetText(address)
	fp.assessmentEntry.SetText(assessment)
	fp.paymentEntry.SetText(payment)
	fp.dateEntry.SetText(date)
}

// Clear empties all four fields
func (fp *FormPanel) Clear() {
	fp.SetValues("", "", "", "")
}

// Entries exposes the entry widgets in display order
func (fp *FormPanel) Entries() []*widget.Entry {
	return []*widget.Entry{fp.addressEntry, fp.assessmentEntry, fp.paymentEntry, fp.dateEntry}
}

// GetContainer returns the form container
func (fp *FormPanel) GetContainer() *fyne.Container {
	return fp.container
}
