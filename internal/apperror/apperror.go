// Package apperror defines the error taxonomy shared by every operation.
// Callers classify failures with errors.Is and render a one-line message;
// no error defined here ever terminates the process.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any storage access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for an item that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an operation that would break a domain invariant
	// (quantity going negative, insufficient stock for an order).
	ErrInvalidState = errors.New("invalid state")

	// ErrConstraint marks a write the storage layer rejected even though the
	// application-level checks passed.
	ErrConstraint = errors.New("constraint violation")
)

// Validation wraps an input rejection with its reason.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// NotFound reports a missing item by name.
func NotFound(name string) error {
	return fmt.Errorf("%w: item %q", ErrNotFound, name)
}

// InvalidState wraps a domain-invariant rejection with its reason.
func InvalidState(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, reason)
}

// Constraint tags a storage-level rejection.
func Constraint(err error) error {
	return fmt.Errorf("%w: %v", ErrConstraint, err)
}
