package pkgmeta

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/serenium/cli/internal/errors"
)

func TestValidateName_Valid(t *testing.T) {
	for _, name := range []string{
		"serenium-toolkit",
		"a",
		"pkg_underscore",
		"0day-scanner",
		"package.with.dots",
		strings.Repeat("x", 255),
	} {
		assert.NoError(t, ValidateName(name), "name %q should be valid", name)
	}
}

func TestValidateName_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("x", 256)},
		{"space", "my package"},
		{"leading space", " package"},
		{"leading dash", "-package"},
		{"leading dot", ".package"},
		{"bang", "pkg!"},
		{"hash", "pkg#1"},
		{"dollar", "pkg$"},
		{"ampersand", "a&b"},
		{"star", "pkg*"},
		{"pipe", "a|b"},
		{"semicolon", "a;b"},
		{"colon", "a:b"},
		{"quote", `a"b`},
		{"angle brackets", "a<b>"},
		{"question mark", "pkg?"},
		{"slash", "a/b"},
		{"backslash", `a\b`},
		{"square brackets", "a[b]"},
		{"curly braces", "a{b}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, serrors.ErrValidation))
		})
	}
}

func TestValidateName_ReportsField(t *testing.T) {
	err := ValidateName("")
	require.Error(t, err)

	var detail *serrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "name", detail.Field)
}

func TestValidateVersion_Valid(t *testing.T) {
	for _, v := range []string{
		"1.0.0",
		"0.0.1",
		"10.20.30",
		"1.0.0-alpha",
		"2.1.0-rc.1+build.5",
		"1.0.0garbage", // prefix-only anchor: legacy behavior, kept on purpose
	} {
		assert.NoError(t, ValidateVersion(v), "version %q should be valid", v)
	}
}

func TestValidateVersion_Invalid(t *testing.T) {
	for _, v := range []string{"", "1.0", "v1.0.0", "1", "abc", ".1.0.0"} {
		err := ValidateVersion(v)
		require.Error(t, err, "version %q should be invalid", v)
		assert.True(t, errors.Is(err, serrors.ErrValidation))
	}
}

func TestValidateEmail_EmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateEmail(""))
}

func TestValidateEmail_Valid(t *testing.T) {
	for _, e := range []string{
		"user@domain.tld",
		"team@serenium.org",
		"first.last+tag@sub.example.co",
		"user_name%x@host-name.io",
	} {
		assert.NoError(t, ValidateEmail(e), "email %q should be valid", e)
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	for _, e := range []string{"invalid", "@example.com", "test@", "test.example.com", "a@b", "user@domain.c"} {
		err := ValidateEmail(e)
		require.Error(t, err, "email %q should be invalid", e)
		assert.True(t, errors.Is(err, serrors.ErrValidation))
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "test", Sanitize(" test "))
	assert.Equal(t, "test", Sanitize("test\x00\x01"))
	assert.Equal(t, "ab", Sanitize("a\x02\x03\x04\x05b"))
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize(" \x00 "))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{" test ", "test\x00\x01", "already clean", "", "\x05 x \x05"}
	for _, s := range inputs {
		once := Sanitize(s)
		assert.Equal(t, once, Sanitize(once), "sanitize should be idempotent for %q", s)
	}
}
