package errs

import (
	"errors"
	"fmt"
)

// Typed errors shared by the store, use cases and handlers. Handlers map
// these to HTTP statuses; PersistenceError keeps the backend detail for
// server-side logs only and never reaches a response body.

// ===============================
// ValidationError
// ===============================

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// ===============================
// NotFoundError
// ===============================

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s #%d not found", e.Entity, e.ID)
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ===============================
// ConflictError
// ===============================

type ConflictError struct {
	Entity string
	ID     uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s #%d was modified concurrently", e.Entity, e.ID)
}

func Conflict(entity string, id uint) error {
	return &ConflictError{Entity: entity, ID: id}
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// ===============================
// PersistenceError
// ===============================

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

func AsPersistence(err error) (*PersistenceError, bool) {
	var pe *PersistenceError
	ok := errors.As(err, &pe)
	return pe, ok
}
