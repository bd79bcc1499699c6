package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"property-tax-tracker/internal/models"
)

// Create inserts a record and returns the id SQLite assigned to it.
func (s *Store) Create(ctx context.Context, in models.RecordInput) (int64, error) {
	if err := s.checkOpen("create record"); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO property_tax (property_address, assessment_amount, payment_amount, payment_date)
		VALUES (?, ?, ?, ?)
	`, in.Address, in.AssessmentAmount, in.PaymentAmount, in.PaymentDate)
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create record: read id: %w", err)
	}
	return id, nil
}

// ListAll returns every record in insertion order. Each call reads a fresh
// snapshot; an empty table yields an empty, non-nil slice.
func (s *Store) ListAll(ctx context.Context) ([]models.PropertyTaxRecord, error) {
	if err := s.checkOpen("list records"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, property_address, assessment_amount, payment_amount, payment_date
		FROM property_tax
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]models.PropertyTaxRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

// Get returns the record with the given id, or ErrRecordNotFound.
func (s *Store) Get(ctx context.Context, id int64) (models.PropertyTaxRecord, error) {
	if err := s.checkOpen("get record"); err != nil {
		return models.PropertyTaxRecord{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, property_address, assessment_amount, payment_amount, payment_date
		FROM property_tax
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PropertyTaxRecord{}, fmt.Errorf("get record %d: %w", id, ErrRecordNotFound)
	}
	if err != nil {
		return models.PropertyTaxRecord{}, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, nil
}

// Update overwrites all four mutable fields of the record with the given id.
// found is false, with a nil error, when no such record exists.
func (s *Store) Update(ctx context.Context, id int64, in models.RecordInput) (found bool, err error) {
	if err := s.checkOpen("update record"); err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE property_tax
		SET property_address = ?, assessment_amount = ?, payment_amount = ?, payment_date = ?
		WHERE id = ?
	`, in.Address, in.AssessmentAmount, in.PaymentAmount, in.PaymentDate, id)
	if err != nil {
		return false, fmt.Errorf("update record %d: %w", id, err)
	}
	return affected(res)
}

// Delete removes the record with the given id. found is false, with a nil
// error, when no such record exists.
func (s *Store) Delete(ctx context.Context, id int64) (found bool, err error) {
	if err := s.checkOpen("delete record"); err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM property_tax WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete record %d: %w", id, err)
	}
	return affected(res)
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.checkOpen("count records"); err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM property_tax`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecord tolerates NULL columns left behind by other writers of the file.
func scanRecord(row scanner) (models.PropertyTaxRecord, error) {
	var (
		rec        models.PropertyTaxRecord
		address    sql.NullString
		assessment sql.NullFloat64
		payment    sql.NullFloat64
		date       sql.NullString
	)
	if err := row.Scan(&rec.ID, &address, &assessment, &payment, &date); err != nil {
		return models.PropertyTaxRecord{}, err
	}

	rec.Address = address.String
	rec.AssessmentAmount = assessment.Float64
	rec.PaymentAmount = payment.Float64
	rec.PaymentDate = date.String
	return rec, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
