package collect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/serenium/cli/internal/errors"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "nmap", []string{"nmap"}},
		{"multiple", "nmap, wireshark, john", []string{"nmap", "wireshark", "john"}},
		{"extra commas", ",nmap,,git,", []string{"nmap", "git"}},
		{"preserves order", "zzz, aaa", []string{"zzz", "aaa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestNameValidator(t *testing.T) {
	v := NameValidator()

	assert.NoError(t, v("serenium-toolkit"))
	// Sanitization runs before the check, so padding is fine
	assert.NoError(t, v("  serenium-toolkit  "))

	err := v("bad name")
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrValidation))

	assert.Error(t, v(""))
	assert.Error(t, v(42))
}

func TestVersionValidator(t *testing.T) {
	v := VersionValidator()

	assert.NoError(t, v("1.0.0"))
	assert.NoError(t, v("2.3.4-beta"))
	assert.Error(t, v("1.0"))
	assert.Error(t, v(""))
	assert.Error(t, v(nil))
}

func TestEmailValidator(t *testing.T) {
	v := EmailValidator()

	assert.NoError(t, v("team@serenium.org"))
	assert.NoError(t, v("")) // optional field
	assert.Error(t, v("not-an-email"))
	assert.Error(t, v(3.14))
}
