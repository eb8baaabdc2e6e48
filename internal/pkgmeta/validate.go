package pkgmeta

import (
	"regexp"
	"strings"
	"unicode/utf8"

	serrors "github.com/serenium/cli/internal/errors"
)

// forbiddenNameChars are rejected anywhere in a package name.
const forbiddenNameChars = `!#$&*|;:"<>?/\[]{}`

// versionPattern anchors the start only; trailing suffixes such as
// "-alpha" are allowed and not further checked. Deliberately loose:
// "1.0.0garbage" passes, matching long-standing behavior.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateName checks a package name against the packaging rules.
// The input is returned unchanged on success; callers sanitize separately.
func ValidateName(name string) error {
	if name == "" {
		return serrors.NewValidationError("name", "package name cannot be empty")
	}
	if len(name) > 255 {
		return serrors.NewValidationError("name", "package name too long (max 255 characters)")
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return serrors.NewValidationError("name",
			"package name contains invalid characters: "+forbiddenNameChars)
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !isAlnum(first) {
		return serrors.NewValidationError("name", "package name must start with an alphanumeric character")
	}
	if strings.ContainsRune(name, ' ') {
		return serrors.NewValidationError("name", "package name cannot contain spaces")
	}
	return nil
}

// ValidateVersion checks that a version string starts with <int>.<int>.<int>.
func ValidateVersion(version string) error {
	if version == "" {
		return serrors.NewValidationError("version", "version cannot be empty")
	}
	if !versionPattern.MatchString(version) {
		return serrors.NewValidationError("version",
			"version must follow semantic versioning (e.g., 1.0.0)")
	}
	return nil
}

// ValidateEmail checks a maintainer email address. The field is optional,
// so the empty string always passes.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return serrors.NewValidationError("email", "invalid email format")
	}
	return nil
}

// Sanitize strips the control bytes 0x00-0x05 anywhere in the string and
// trims surrounding whitespace. Idempotent.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	cleaned := strings.Map(func(r rune) rune {
		if r <= 0x05 {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(cleaned)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
