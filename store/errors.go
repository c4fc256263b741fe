package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a statement scoped to an id matches no row.
	ErrNotFound = errors.New("store: record not found")

	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("store: conflicting record")

	errNoID      = errors.New("no id returned")
	errNoColumns = errors.New("no columns to update")
)

// Error wraps an infrastructure fault raised while executing a statement.
// Its detail is for logs only.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
