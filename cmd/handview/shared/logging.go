package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger at the requested level
func SetupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// SetupFileLogger writes logs to a file, for commands that own the
// terminal (the watch TUI). Falls back to stderr if the file can't be
// opened.
func SetupFileLogger(path string, debug bool) (*log.Logger, func()) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return SetupLogger(debug), func() {}
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(file, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, func() { _ = file.Close() }
}
