package utid

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with utid-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds an identifier field to the logger.
func (l *Logger) WithID(id ID) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id.String()),
	}
}

// WithWidth adds a layout width field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithSegments adds a segment count field to the logger.
func (l *Logger) WithSegments(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("segments", count),
	}
}

// WithLayout adds the composer's width and segment count fields to the logger.
func (l *Logger) WithLayout(c *Composer) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", c.Width(), "segments", len(c.segments)),
	}
}

// LogGenerate logs a generate operation.
func (l *Logger) LogGenerate(id ID, err error) {
	if err != nil {
		l.Error("generate failed",
			"error", err,
		)
	} else {
		l.Debug("generate completed",
			"id", id.String(),
		)
	}
}

// LogDecompose logs a decompose operation.
func (l *Logger) LogDecompose(id ID, values int, err error) {
	if err != nil {
		l.Error("decompose failed",
			"id", id.String(),
			"error", err,
		)
	} else {
		l.Debug("decompose completed",
			"id", id.String(),
			"values", values,
		)
	}
}
