// Package apperr defines the application's error taxonomy.
//
// Every failure that crosses a service boundary is one of four kinds:
//
//	Validation       — missing or malformed caller input (HTTP 400)
//	NotFound         — the target of an update or lookup is absent (HTTP 404)
//	StoreUnavailable — a record-store or blob-store call failed (HTTP 500)
//	Unexpected       — anything uncategorised (HTTP 500)
//
// Controllers never inspect error strings; they map the kind to a
// status code via HTTPStatus and forward the message verbatim.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unexpected Kind = iota
	Validation
	NotFound
	StoreUnavailable
)

// Error carries a kind, a human-readable message, and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unexpected error"
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a Validation error from a format string.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error from a format string.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a collaborator failure as StoreUnavailable.
// The underlying message is kept so the caller sees what actually broke.
func Store(err error, context string) *Error {
	return &Error{
		Kind:    StoreUnavailable,
		Message: fmt.Sprintf("%s: %v", context, err),
		Err:     err,
	}
}

// KindOf reports the kind of err, Unexpected when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// HTTPStatus maps an error to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
