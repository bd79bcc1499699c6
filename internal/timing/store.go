package timing

import (
	"context"

	"property-tax-tracker/internal/models"
)

// Operation names recorded by Store.
const (
	OpCreate = "create"
	OpList   = "list"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordStore is the subset of the record store that gets timed.
type RecordStore interface {
	Create(ctx context.Context, in models.RecordInput) (int64, error)
	ListAll(ctx context.Context) ([]models.PropertyTaxRecord, error)
	Update(ctx context.Context, id int64, in models.RecordInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Store times every call before handing it to the wrapped store. Failed
// calls are timed as well.
type Store struct {
	next    RecordStore
	tracker *Tracker
}

// WrapStore returns next with each operation timed into tracker.
func WrapStore(next RecordStore, tracker *Tracker) *Store {
	return &Store{next: next, tracker: tracker}
}

func (s *Store) Create(ctx context.Context, in models.RecordInput) (int64, error) {
	defer s.tracker.Start(OpCreate)()
	return s.next.Create(ctx, in)
}

func (s *Store) ListAll(ctx context.Context) ([]models.PropertyTaxRecord, error) {
	defer s.tracker.Start(OpList)()
	return s.next.ListAll(ctx)
}

func (s *Store) Update(ctx context.Context, id int64, in models.RecordInput) (bool, error) {
	defer s.tracker.Start(OpUpdate)()
	return s.next.Update(ctx, id, in)
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	defer s.tracker.Start(OpDelete)()
	return s.next.Delete(ctx, id)
}
