// Package cmd provides the serenium command-line surface.
package cmd

import (
	"errors"

	serrors "github.com/serenium/cli/internal/errors"
)

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates user input failed validation.
	ExitValidationError = 2

	// ExitNotFound indicates a referenced file was not found.
	ExitNotFound = 5

	// ExitFormatError indicates a config file could not be parsed.
	ExitFormatError = 65

	// ExitCancelled indicates the user interrupted an interactive prompt.
	ExitCancelled = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitFormatError:
		return "Format Error"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *serrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, serrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, serrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, serrors.ErrFormat):
		return ExitFormatError
	case errors.Is(err, serrors.ErrCancelled):
		return ExitCancelled
	default:
		return ExitGeneralError
	}
}
