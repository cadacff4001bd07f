package catalook

import (
	"context"
	"log/slog"
	"os"

	"github.com/hanbitlee/catalook/engine"
)

// Logger wraps slog.Logger with catalook-specific helpers so operations log
// with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at info level is used.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs at the
// given minimum level.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLoad logs a catalog load.
func (l *Logger) LogLoad(ctx context.Context, rows, malformed int) {
	if malformed > 0 {
		l.WarnContext(ctx, "catalog loaded with malformed cells",
			"rows", rows,
			"malformed", malformed,
		)
	} else {
		l.InfoContext(ctx, "catalog loaded",
			"rows", rows,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, mode engine.Mode, matches int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"mode", mode.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"mode", mode.String(),
			"matches", matches,
		)
	}
}

// LogResolve logs a scan disambiguation.
func (l *Logger) LogResolve(ctx context.Context, candidates int, barcode string, ok bool) {
	if ok {
		l.DebugContext(ctx, "scan resolved",
			"candidates", candidates,
			"barcode", barcode,
		)
	} else {
		l.DebugContext(ctx, "no barcode recognized",
			"candidates", candidates,
		)
	}
}
