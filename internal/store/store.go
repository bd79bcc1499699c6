package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var (
	// ErrRecordNotFound is returned by Get when no row has the requested id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnsupportedDriver is returned by Open for driver names other than sqlite3 and sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
)

var supportedDrivers = map[string]bool{
	"sqlite3": true,
	"sqlite":  true,
}

// Store provides durable storage for property tax records.
type Store struct {
	db     *sql.DB
	path   string
	driver string

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Open creates or opens the database at path using the named driver and
// applies the schema. It is safe to call on an existing database.
func Open(path, driver string) (*Store, error) {
	if !supportedDrivers[driver] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: SQLite has a single writer, and each connection to
	// :memory: would otherwise see its own empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(db, path); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, path: path, driver: driver}, nil
}

// Close closes the database connection. Subsequent calls return the first result.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

// Path returns the database location given to Open.
func (s *Store) Path() string {
	return s.path
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

func applyPragmas(db *sql.DB, path string) error {
	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) checkOpen(op string) error {
	if s.closed.Load() {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}
	return nil
}
