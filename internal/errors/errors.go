// Package errors provides sentinel errors for the Serenium CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a user-supplied field failed a syntactic rule.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a referenced configuration file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrFormat indicates a configuration file has an unsupported extension
	// or its content failed to parse.
	ErrFormat = errors.New("format error")

	// ErrCancelled indicates the user aborted via interrupt.
	ErrCancelled = errors.New("cancelled")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the configuration field name for validation errors (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error for a configuration field.
func NewValidationError(field, message string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError creates a not found error for a file path.
func NewNotFoundError(location, message string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Cause:    ErrNotFound,
	}
}

// NewFormatError creates a format error for a configuration file.
func NewFormatError(location, message, hint string) error {
	return &DetailError{
		Type:     "format error",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrFormat,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already displayed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
