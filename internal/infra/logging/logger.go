// Package logging provides leveled logging for taskmenu.
// Entries are plain text lines written to a single writer, usually stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/runoshun/taskmenu/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted entries at or above a minimum level.
// Fields are ordered to minimize memory padding.
type Logger struct {
	out   io.Writer
	now   func() time.Time
	mu    sync.Mutex
	level slog.Level
}

// New creates a new Logger writing to out.
// If out is nil, logging is disabled.
func New(out io.Writer, level slog.Level) *Logger {
	return &Logger{
		out:   out,
		level: level,
		now:   time.Now,
	}
}

// IsValidLevel reports whether levelStr names a level ParseLevel knows.
func IsValidLevel(levelStr string) bool {
	switch levelStr {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// ParseLevel parses a log level string into slog.Level.
// Unknown strings map to info; callers validate with IsValidLevel first.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [task-1] [category] message
func formatLog(t time.Time, level slog.Level, position int, category, msg string) string {
	scope := "global"
	if position > 0 {
		scope = fmt.Sprintf("task-%d", position)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, position int, category, msg string) {
	if l.out == nil {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, position, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, entry)
}

// Info logs an info message.
func (l *Logger) Info(position int, category, msg string) {
	l.log(slog.LevelInfo, position, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(position int, category, msg string) {
	l.log(slog.LevelDebug, position, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(position int, category, msg string) {
	l.log(slog.LevelWarn, position, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(position int, category, msg string) {
	l.log(slog.LevelError, position, category, msg)
}
