package domain

import (
	"errors"
	"net/http"
	"strings"
)

// HTTPError is implemented by every domain error variant so the handler
// layer can map failures to status codes without knowing each type.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors for errors.Is() matching across layers.
var (
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrUnprocessable = errors.New("unprocessable")
)

// One variant per taxonomy entry. Each carries the human-readable message
// that crosses the system boundary; nothing else is ever surfaced.
type (
	// ValidationError indicates malformed, missing, or blank input,
	// including bad identifier formats.
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates a failed login credential.
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates an authenticated caller without permission.
	ForbiddenError struct {
		Message string
	}

	// NotFoundError indicates the target entity is absent.
	NotFoundError struct {
		Message string
	}

	// ConflictError indicates a unique-constraint violation. Fields lists
	// the violated columns, each rendered as "<field> already exists" in
	// the outgoing message.
	ConflictError struct {
		Message string
		Fields  []string
	}

	// UnprocessableError indicates a store-level field validation failure
	// distinct from uniqueness (e.g. a malformed email).
	UnprocessableError struct {
		Message string
	}

	// InternalError indicates an underlying store failure or an
	// unclassified fault.
	InternalError struct {
		Message string
	}
)

func (e *ValidationError) Error() string    { return e.Message }
func (e *UnauthorizedError) Error() string  { return e.Message }
func (e *ForbiddenError) Error() string     { return e.Message }
func (e *NotFoundError) Error() string      { return e.Message }
func (e *ConflictError) Error() string      { return e.Message }
func (e *UnprocessableError) Error() string { return e.Message }
func (e *InternalError) Error() string      { return e.Message }

func (e *ValidationError) StatusCode() int    { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int  { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int     { return http.StatusForbidden }
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }
func (e *ConflictError) StatusCode() int      { return http.StatusConflict }
func (e *UnprocessableError) StatusCode() int { return http.StatusUnprocessableEntity }
func (e *InternalError) StatusCode() int      { return http.StatusInternalServerError }

// NewConflictError builds the conflict variant for the given violated
// fields, rendering the message as "<field> already exists" per field.
func NewConflictError(fields ...string) *ConflictError {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + " already exists"
	}
	return &ConflictError{
		Message: strings.Join(parts, ", "),
		Fields:  fields,
	}
}

// Is implementations let callers match variants against the sentinels.
func (e *ValidationError) Is(target error) bool    { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool  { return target == ErrUnauthorized }
func (e *ForbiddenError) Is(target error) bool     { return target == ErrForbidden }
func (e *NotFoundError) Is(target error) bool      { return target == ErrNotFound }
func (e *ConflictError) Is(target error) bool      { return target == ErrConflict }
func (e *UnprocessableError) Is(target error) bool { return target == ErrUnprocessable }
