package maskgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with maskgo-specific context.
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

// WithSelection adds a selection name field to the logger.
func (l *Logger) WithSelection(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("selection", name),
	}
}

// WithBits adds a mask length field to the logger.
func (l *Logger) WithBits(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", n),
	}
}

// WithCount adds a set-bit count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSelect logs a selection evaluation.
func (l *Logger) LogSelect(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "select failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "select completed",
			"count", count,
		)
	}
}

// LogModify logs a refinement of the active selection.
func (l *Logger) LogModify(ctx context.Context, op CombineOp, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "modify failed",
			"op", op.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "modify completed",
			"op", op.String(),
			"count", count,
		)
	}
}

// LogStore logs storing or loading a named selection.
func (l *Logger) LogStore(ctx context.Context, action, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "store operation failed",
			"action", action,
			"selection", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "store operation completed",
			"action", action,
			"selection", name,
		)
	}
}

// LogHistory logs an undo/redo operation.
func (l *Logger) LogHistory(ctx context.Context, action string, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "history operation failed",
			"action", action,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "history operation completed",
			"action", action,
			"count", count,
		)
	}
}
