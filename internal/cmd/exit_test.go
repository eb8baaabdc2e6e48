package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	serrors "github.com/serenium/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation sentinel", serrors.ErrValidation, ExitValidationError},
		{"wrapped validation", serrors.NewValidationError("name", "bad"), ExitValidationError},
		{"not found", serrors.NewNotFoundError("x.yaml", "no such file"), ExitNotFound},
		{"format", serrors.NewFormatError("x.toml", "unsupported", ""), ExitFormatError},
		{"cancelled", serrors.Wrap(serrors.ErrCancelled, "interrupted"), ExitCancelled},
		{"exit error wins", serrors.NewExitError(errors.New("boom"), 42), 42},
		{"plain error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Format Error", ExitCodeName(ExitFormatError))
	assert.Equal(t, "Cancelled", ExitCodeName(ExitCancelled))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
