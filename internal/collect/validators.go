package collect

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/serenium/cli/internal/pkgmeta"
)

// Survey validators wrapping the pkgmeta field checks. Input is sanitized
// before checking, matching what askString stores on success.

// NameValidator validates the package name prompt.
func NameValidator() survey.Validator {
	return func(val interface{}) error {
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return pkgmeta.ValidateName(pkgmeta.Sanitize(s))
	}
}

// VersionValidator validates the version prompt.
func VersionValidator() survey.Validator {
	return func(val interface{}) error {
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return pkgmeta.ValidateVersion(pkgmeta.Sanitize(s))
	}
}

// EmailValidator validates the maintainer email prompt.
func EmailValidator() survey.Validator {
	return func(val interface{}) error {
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return pkgmeta.ValidateEmail(pkgmeta.Sanitize(s))
	}
}
