package models

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup by id that matched no row.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a field that violates its declared constraint. The
// write is rejected before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// UniquenessError reports a write that would duplicate a unique constraint,
// such as a second review for the same (listing, reviewer) pair.
type UniquenessError struct {
	Constraint string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Constraint)
}
