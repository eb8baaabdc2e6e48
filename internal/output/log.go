package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogFileName is the process-local append-only run log.
const LogFileName = "serenium.log"

// LogOptions configures the run logger.
type LogOptions struct {
	// FilePath is the log file location. Empty means LogFileName in the
	// working directory.
	FilePath string

	// Verbose lowers the level to debug and mirrors records to stderr.
	Verbose bool
}

// nopCloser is returned when no log file is held.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates the run logger. Records always go to the append-only
// log file; with Verbose they are mirrored to stderr. The logger is passed
// explicitly to the collector and orchestrator, never kept as a global.
//
// The returned closer owns the log file and is never nil; when the file
// cannot be opened, logging degrades to stderr only and the closer is a
// no-op.
func NewLogger(opts LogOptions) (*log.Logger, io.Closer) {
	path := opts.FilePath
	if path == "" {
		path = LogFileName
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		writers = append(writers, f)
		closer = f
	}
	if opts.Verbose || err != nil {
		writers = append(writers, os.Stderr)
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(io.MultiWriter(writers...), log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closer
}
