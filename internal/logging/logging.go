// Package logging provides the file-based debug log for pomo.
// The TUI owns the terminal, so log output never goes to stdout or stderr;
// it is written to a log file, or discarded when logging is off.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xolan/pomo/internal/osutil"
)

// Logger wraps slog.Logger together with the file it writes to.
type Logger struct {
	*slog.Logger
	file *os.File
}

// ParseLevel parses a log level string into slog.Level.
// The second return value is false for "off" and for unknown values.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch levelStr {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// New opens (or creates) the log file at path and returns a Logger writing
// text records at levelStr and above. When levelStr disables logging no
// file is touched and a discarding Logger is returned.
func New(path, levelStr string) (*Logger, error) {
	level, ok := ParseLevel(levelStr)
	if !ok {
		return Discard(), nil
	}

	if err := osutil.Provider.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := osutil.Provider.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler),
		file:   f,
	}, nil
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
