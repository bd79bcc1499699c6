package controllers

import (
	"context"

	"property-tax-tracker/internal/models"
)

// RecordStore is the persistence the controller mutates. *store.Store satisfies it.
type RecordStore interface {
	Create(ctx context.Context, in models.RecordInput) (int64, error)
	Update(ctx context.Context, id int64, in models.RecordInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// FieldValues holds the raw text of the four form fields.
type FieldValues struct {
	Address     string
	Assessment  string
	Payment     string
	PaymentDate string
}

// Form is the editable field set of a front end.
type Form interface {
	Values() FieldValues
	Clear()
}

// ListView is the record table of a front end.
type ListView interface {
	Refresh(ctx context.Context) error
	SelectedID() (int64, bool)
}

// Notifier surfaces results to the user.
type Notifier interface {
	UpdateStatus(status string)
	ShowError(title string, err error)
}

// View bundles everything a front end provides to the controller.
type View interface {
	Form
	ListView
	Notifier
}
