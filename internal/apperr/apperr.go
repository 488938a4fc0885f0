// Package apperr defines the error taxonomy shared by all workflows.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a read that matched zero rows, or a mutation that
// affected zero rows.
var ErrNotFound = errors.New("not found")

// Validation reports a missing or malformed request field. The message is safe
// to return to callers verbatim.
type Validation struct {
	Message string
}

func (e *Validation) Error() string { return e.Message }

// Validationf builds a Validation error from a format string.
func Validationf(format string, args ...any) *Validation {
	return &Validation{Message: fmt.Sprintf(format, args...)}
}

// Storage reports a blob store failure. Workflows must not mutate the record
// store after one.
type Storage struct {
	Err error
}

func (e *Storage) Error() string { return "storage: " + e.Err.Error() }
func (e *Storage) Unwrap() error { return e.Err }

// Conflict reports a record store constraint violation (duplicate key,
// missing foreign key). The message carries no driver detail.
type Conflict struct {
	Message string
}

func (e *Conflict) Error() string { return e.Message }

// IsValidation reports whether err is a Validation error.
func IsValidation(err error) bool {
	var v *Validation
	return errors.As(err, &v)
}

// IsStorage reports whether err is a Storage error.
func IsStorage(err error) bool {
	var s *Storage
	return errors.As(err, &s)
}

// IsConflict reports whether err is a Conflict error.
func IsConflict(err error) bool {
	var c *Conflict
	return errors.As(err, &c)
}
