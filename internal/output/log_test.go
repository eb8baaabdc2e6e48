package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)

	logger, closer := NewLogger(LogOptions{FilePath: path})
	require.NotNil(t, logger)
	require.NotNil(t, closer)

	logger.Info("scaffold created", "package", "test-package")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scaffold created")
	assert.Contains(t, string(data), "test-package")
}

func TestNewLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)

	logger, closer := NewLogger(LogOptions{FilePath: path})
	logger.Info("first run")
	require.NoError(t, closer.Close())

	logger, closer = NewLogger(LogOptions{FilePath: path})
	logger.Info("second run")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNewLogger_FileUnavailable(t *testing.T) {
	// A directory squatting on the log path makes the file unopenable;
	// logging degrades to stderr and the closer stays usable.
	path := filepath.Join(t.TempDir(), LogFileName)
	require.NoError(t, os.Mkdir(path, 0o755))

	logger, closer := NewLogger(LogOptions{FilePath: path})
	require.NotNil(t, logger)
	require.NotNil(t, closer)

	logger.Info("still alive")
	assert.NoError(t, closer.Close())
}
