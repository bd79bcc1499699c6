package controllers

import (
	"context"
	"fmt"
	"strings"

	"property-tax-tracker/internal/logger"
	"property-tax-tracker/internal/models"
)

const component = "FormController"

// ActionBinder is implemented by front ends whose controls trigger the four
// submit operations.
type ActionBinder interface {
	SetCreateHandler(handler func())
	SetEditHandler(handler func())
	SetDeleteHandler(handler func())
	SetViewHandler(handler func())
}

// FormController maps the four form actions onto record store calls and
// keeps the list view in step with the store.
type FormController struct {
	ctx    context.Context
	store  RecordStore
	view   View
	logger logger.Logger
}

// NewFormController creates a controller. ctx bounds every store call made
// on behalf of the user and is normally the application context.
func NewFormController(ctx context.Context, store RecordStore, log logger.Logger) *FormController {
	if log == nil {
		log = logger.Nop()
	}
	return &FormController{
		ctx:    ctx,
		store:  store,
		logger: log,
	}
}

// SetView associates the front end with this controller and, if it has
// action controls, binds them to the submit operations.
func (fc *FormController) SetView(view View) {
	fc.view = view

	binder, ok := view.(ActionBinder)
	if !ok {
		return
	}
	binder.SetCreateHandler(func() { fc.SubmitCreate() })
	binder.SetEditHandler(func() { fc.SubmitEdit() })
	binder.SetDeleteHandler(func() { fc.SubmitDelete() })
	binder.SetViewHandler(func() { fc.SubmitView() })
}

// SubmitCreate inserts a record from the current field values, refreshes the
// list and clears the fields.
func (fc *FormController) SubmitCreate() (Outcome, error) {
	input, warnings := fc.readInput()

	id, err := fc.store.Create(fc.ctx, input)
	if err != nil {
		return fc.fail("Add failed", err)
	}

	if err := fc.view.Refresh(fc.ctx); err != nil {
		return fc.fail("Refresh failed", err)
	}
	fc.view.Clear()

	fc.logger.Info(component, "record created", map[string]interface{}{"id": id})
	fc.report(fmt.Sprintf("Record %d added", id), warnings)
	return OutcomeCreated, nil
}

// SubmitEdit overwrites the selected record with the current field values,
// refreshes the list and clears the fields. Without a selection it does nothing.
func (fc *FormController) SubmitEdit() (Outcome, error) {
	id, ok := fc.view.SelectedID()
	if !ok {
		return fc.noSelection("edit")
	}

	input, warnings := fc.readInput()

	found, err := fc.store.Update(fc.ctx, id, input)
	if err != nil {
		return fc.fail("Edit failed", err)
	}

	if err := fc.view.Refresh(fc.ctx); err != nil {
		return fc.fail("Refresh failed", err)
	}
	fc.view.Clear()

	if !found {
		return fc.notFound(id)
	}

	fc.logger.Info(component, "record updated", map[string]interface{}{"id": id})
	fc.report(fmt.Sprintf("Record %d updated", id), warnings)
	return OutcomeUpdated, nil
}

// SubmitDelete removes the selected record and refreshes the list. The fields
// are left as they are. Without a selection it does nothing.
func (fc *FormController) SubmitDelete() (Outcome, error) {
	id, ok := fc.view.SelectedID()
	if !ok {
		return fc.noSelection("delete")
	}

	found, err := fc.store.Delete(fc.ctx, id)
	if err != nil {
		return fc.fail("Delete failed", err)
	}

	if err := fc.view.Refresh(fc.ctx); err != nil {
		return fc.fail("Refresh failed", err)
	}

	if !found {
		return fc.notFound(id)
	}

	fc.logger.Info(component, "record deleted", map[string]interface{}{"id": id})
	fc.view.UpdateStatus(fmt.Sprintf("Record %d deleted", id))
	return OutcomeDeleted, nil
}

// SubmitView reloads the list from the store.
func (fc *FormController) SubmitView() (Outcome, error) {
	if err := fc.view.Refresh(fc.ctx); err != nil {
		return fc.fail("Refresh failed", err)
	}

	fc.logger.Debug(component, "records refreshed", nil)
	fc.view.UpdateStatus("Records refreshed")
	return OutcomeRefreshed, nil
}

// readInput parses the form. Unparseable amounts become 0.0; a warning is
// produced for each non-empty field that had to fall back.
func (fc *FormController) readInput() (models.RecordInput, []string) {
	values := fc.view.Values()

	var warnings []string
	amount := func(name, text string) float64 {
		v, ok := models.ParseAmount(text)
		if !ok && strings.TrimSpace(text) != "" {
			warnings = append(warnings, fmt.Sprintf("%s %q is not a number, saved as 0.00", name, text))
			fc.logger.Warning(component, "amount fell back to zero", map[string]interface{}{
				"field": name,
				"input": text,
			})
		}
		return v
	}

	input := models.RecordInput{
		Address:          values.Address,
		AssessmentAmount: amount("assessment amount", values.Assessment),
		PaymentAmount:    amount("payment amount", values.Payment),
		PaymentDate:      values.PaymentDate,
	}
	return input, warnings
}

func (fc *FormController) report(status string, warnings []string) {
	if len(warnings) > 0 {
		status += "; " + strings.Join(warnings, "; ")
	}
	fc.view.UpdateStatus(status)
}

func (fc *FormController) noSelection(action string) (Outcome, error) {
	fc.logger.Debug(component, "no record selected", map[string]interface{}{"action": action})
	fc.view.UpdateStatus("No record selected")
	return OutcomeNoSelection, nil
}

func (fc *FormController) notFound(id int64) (Outcome, error) {
	fc.logger.Warning(component, "selected record no longer exists", map[string]interface{}{"id": id})
	fc.view.UpdateStatus(fmt.Sprintf("Record %d no longer exists", id))
	return OutcomeNotFound, nil
}

// fail reports a storage error without tearing down the interface.
func (fc *FormController) fail(title string, err error) (Outcome, error) {
	fc.logger.Error(component, err, map[string]interface{}{"title": title})
	fc.view.UpdateStatus(title)
	fc.view.ShowError(title, err)
	return OutcomeFailed, err
}
