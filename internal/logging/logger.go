// Package logging provides the shared charmbracelet/log setup for
// gomdedit commands.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One process-wide logger for the CLI
var (
	defaultLogger *log.Logger
	bootstrapOnce sync.Once
)

// New creates a logger writing to stderr at the given level.
// Valid levels: "debug", "info", "warn"/"warning", "error"; anything
// else falls back to info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// Default returns the process-wide logger, creating it at info level on
// first use.
func Default() *log.Logger {
	bootstrapOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New("info")
		}
	})
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	bootstrapOnce.Do(func() {})
	defaultLogger = logger
}

// SetLevel adjusts the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
