// Package logging builds the charmbracelet logger behind the process-wide
// slog default. It is configured from the environment:
//
//	ISAEXT_LOG_LEVEL    debug, info, warn, error (default: warn)
//	ISAEXT_LOG_PREFIX   prefix for log messages (default: "isaext ")
//	ISAEXT_LOG_TO_FILE  when "1", log to a timestamped file instead of stderr
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerCloser wraps a logger and provides a Close method for cleanup
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the underlying writer if it's closeable
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// ParseLevel maps a level name to a log level. Unknown names yield the
// fallback.
func ParseLevel(name string, fallback log.Level) log.Level {
	switch name {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return fallback
}

// NewLoggerWithWriter creates a new logger with the provided writer
func NewLoggerWithWriter(w io.Writer) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	lg.SetLevel(ParseLevel(os.Getenv("ISAEXT_LOG_LEVEL"), log.WarnLevel))

	prefix := os.Getenv("ISAEXT_LOG_PREFIX")
	if prefix == "" {
		prefix = "isaext "
	}

	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != os.Stderr {
		closer = c
	}

	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates a new logger based on environment variables.
func NewLogger() *LoggerCloser {
	output := io.Writer(os.Stderr)

	if os.Getenv("ISAEXT_LOG_TO_FILE") == "1" {
		timestamp := time.Now().Format("20060102-150405")
		logFile := fmt.Sprintf("isaext-%s-debug.log", timestamp)

		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			output = f
		}
		// If file creation fails, fall back to stderr
	}

	return NewLoggerWithWriter(output)
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return os.Getenv("ISAEXT_LOG_LEVEL") == "debug"
}
