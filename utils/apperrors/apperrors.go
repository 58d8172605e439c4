package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// Validation covers missing or malformed request fields and dangling
	// references supplied by the client.
	Validation Kind = iota
	// Auth covers failed PIN authentication.
	Auth
	// NotFound covers lookups of records that do not exist.
	NotFound
	// Integrity covers uniqueness or referential violations at the store.
	Integrity
	// Store covers persistence-layer failures; always surfaced, never dropped.
	Store
)

// Error carries a classification alongside the message so handlers can map
// it to a status code without string matching.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a plain message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap creates a classified error wrapping an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is a classified error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Status returns the HTTP status class for err. Unclassified errors are
// treated as store failures.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Integrity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err, hiding wrapped causes
// of store failures.
func Message(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "Server error"
	}
	return appErr.Msg
}
