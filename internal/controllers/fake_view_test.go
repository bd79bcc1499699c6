package controllers

import (
	"context"

	"property-tax-tracker/internal/models"
	"property-tax-tracker/internal/store"
)

// fakeView is an in-memory front end whose list is backed by a real store.
type fakeView struct {
	source *store.Store

	fields   FieldValues
	rows     []models.PropertyTaxRecord
	selected int // row index, -1 for none

	refreshes  int
	refreshErr error
	status     string
	errors     []string

	createHandler func()
	editHandler   func()
	deleteHandler func()
	viewHandler   func()
}

func newFakeView(source *store.Store) *fakeView {
	return &fakeView{source: source, selected: -1}
}

func (v *fakeView) Values() FieldValues { return v.fields }
func (v *fakeView) Clear()              { v.fields = FieldValues{} }

func (v *fakeView) Refresh(ctx context.Context) error {
	v.refreshes++
	if v.refreshErr != nil {
		return v.refreshErr
	}
	rows, err := v.source.ListAll(ctx)
	if err != nil {
		return err
	}
	v.rows = rows
	v.selected = -1
	return nil
}

func (v *fakeView) SelectedID() (int64, bool) {
	if v.selected < 0 || v.selected >= len(v.rows) {
		return 0, false
	}
	return v.rows[v.selected].ID, true
}

func (v *fakeView) UpdateStatus(status string) { v.status = status }

func (v *fakeView) ShowError(title string, err error) {
	v.errors = append(v.errors, title+": "+err.Error())
}

func (v *fakeView) SetCreateHandler(h func()) { v.createHandler = h }
func (v *fakeView) SetEditHandler(h func())   { v.editHandler = h }
func (v *fakeView) SetDeleteHandler(h func()) { v.deleteHandler = h }
func (v *fakeView) SetViewHandler(h func())   { v.viewHandler = h }

// selectID selects the displayed row holding id.
func (v *fakeView) selectID(id int64) {
	for i, rec := range v.rows {
		if rec.ID == id {
			v.selected = i
			return
		}
	}
	v.selected = -1
}
