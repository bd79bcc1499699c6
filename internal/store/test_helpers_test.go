package store

import (
	"path/filepath"
	"testing"

	"property-tax-tracker/internal/models"
)

var testDrivers = []string{"sqlite3", "sqlite"}

// createTestStore opens a file-backed store in a temp dir for the given driver.
func createTestStore(t *testing.T, driver string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, driver)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", driver, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// forEachDriver runs fn as a subtest against a fresh store per driver.
func forEachDriver(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Helper()
	for _, driver := range testDrivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, createTestStore(t, driver))
		})
	}
}

func mainStreet() models.RecordInput {
	return models.RecordInput{
		Address:          "123 Main St",
		AssessmentAmount: 1000,
		PaymentAmount:    1000,
		PaymentDate:      "2024-01-01",
	}
}
