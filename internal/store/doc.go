// Package store persists property tax records in a local SQLite database.
//
// A Store owns one table, property_tax, whose integer id is assigned by
// SQLite (AUTOINCREMENT, so ids are never reused after a delete). Every
// mutating call commits before it returns; there is no batching.
//
// Two drivers are supported and selected by name at Open time:
//
//	sqlite3  github.com/mattn/go-sqlite3 (cgo)
//	sqlite   modernc.org/sqlite (pure Go)
//
// Usage:
//
//	s, err := store.Open("property_tax.db", "sqlite3")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
package store
