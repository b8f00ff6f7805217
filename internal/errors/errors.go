// Package errors provides the internal error type used across the service.
// Errors are built fluently and marked with a class that drives both HTTP
// status mapping and programmatic checks:
//
//	ierr.NewError("rate entry not found").
//		WithHint("No rate configured for this combination").
//		WithReportableDetails(map[string]interface{}{"id": id}).
//		Mark(ierr.ErrNotFound)
package errors

import (
	"errors"
	"fmt"
)

// InternalError is the error type carried through the service layers. It
// wraps an optional cause, carries a user-facing hint and structured
// details, and is marked with exactly one error class.
type InternalError struct {
	message string
	cause   error
	mark    error
	hint    string
	details map[string]interface{}
}

// NewError starts building an error from a message.
func NewError(message string) *InternalError {
	return &InternalError{message: message}
}

// NewErrorf starts building an error from a format string.
func NewErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{message: fmt.Sprintf(format, args...)}
}

// WithError starts building an error that wraps an existing cause.
func WithError(err error) *InternalError {
	if ie, ok := err.(*InternalError); ok {
		return ie
	}
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &InternalError{message: msg, cause: err}
}

// WithHint attaches a human-readable hint, safe to surface to API clients.
func (e *InternalError) WithHint(hint string) *InternalError {
	e.hint = hint
	return e
}

// WithHintf attaches a formatted hint.
func (e *InternalError) WithHintf(format string, args ...interface{}) *InternalError {
	e.hint = fmt.Sprintf(format, args...)
	return e
}

// WithReportableDetails attaches structured details included in the error
// response body.
func (e *InternalError) WithReportableDetails(details map[string]interface{}) *InternalError {
	e.details = details
	return e
}

// Mark assigns the error class. Returns the error itself so Mark can be the
// terminal call of the builder chain.
func (e *InternalError) Mark(mark error) *InternalError {
	e.mark = mark
	return e
}

func (e *InternalError) Error() string {
	if e.cause != nil && e.cause.Error() != e.message {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

func (e *InternalError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.mark
}

// Is lets errors.Is match against both the mark and the wrapped cause.
func (e *InternalError) Is(target error) bool {
	if e.mark != nil && errors.Is(e.mark, target) {
		return true
	}
	if e.cause != nil && errors.Is(e.cause, target) {
		return true
	}
	return false
}

// Hint returns the user-facing hint, falling back to the message.
func (e *InternalError) Hint() string {
	if e.hint != "" {
		return e.hint
	}
	return e.message
}

// Details returns the structured details attached to the error.
func (e *InternalError) Details() map[string]interface{} {
	return e.details
}

// Message returns the internal message.
func (e *InternalError) Message() string {
	return e.message
}
