package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Open when the database file does not exist.
// The inspect command reports this as a distinct "file not found" message
// rather than a generic database error.
var ErrNotFound = errors.New("database file not found")

// ErrNoRecord is returned by lookups that match no row.
var ErrNoRecord = errors.New("no record for file path")

// StorageError wraps any failure coming out of the SQLite layer:
// a malformed file, a missing table, a locked database, and so on.
//
// Design decision: We wrap driver errors in a named type instead of
// returning them bare because callers classify failures into tiers
// (missing file, storage failure, everything else) to pick the
// user-facing message. errors.As on *StorageError identifies the
// storage tier without the caller importing driver internals.
type StorageError struct {
	// Op is the operation that failed, e.g. "open" or "count rows".
	Op string

	// Err is the underlying driver or database/sql error.
	Err error
}

// Error returns the operation and the underlying error detail.
func (e *StorageError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr wraps err as a *StorageError, preserving nil.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
