//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrFormat)
	assert.NotEqual(t, ErrNotFound, ErrFormat)
	assert.NotEqual(t, ErrFormat, ErrCancelled)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "config.yaml",
		Field:    "version",
		Hint:     "Use semver format",
	}

	output := detail.Error()

	assert.Contains(t, output, "validation failed")
	assert.Contains(t, output, "config.yaml")
	assert.Contains(t, output, "version")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use semver format")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("version", "invalid value")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "version", detail.Field)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("missing.yaml", "configuration file not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestNewFormatError(t *testing.T) {
	err := NewFormatError("config.toml", "unsupported extension", "Use .yaml, .yml, or .json")

	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "unsupported extension")
	assert.Contains(t, err.Error(), "Hint: Use .yaml, .yml, or .json")
}

func TestExitError(t *testing.T) {
	base := NewValidationError("name", "empty")
	exit := NewExitError(base, 2)

	assert.Equal(t, 2, exit.Code)
	assert.True(t, errors.Is(exit, ErrValidation))
	assert.Equal(t, base.Error(), exit.Error())
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "field check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "field check failed")
}
