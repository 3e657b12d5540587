package logging

import "context"

// Logger receives framework log events
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Log levels understood by the slog adapter
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return NoOp()
}

// NoOp returns a logger that discards everything
func NoOp() Logger {
	return noOpLogger{}
}

type noOpLogger struct{}

func (noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

// EnsureLogger returns ctx unchanged if it already carries a logger,
// otherwise a child context carrying fallback
func EnsureLogger(ctx context.Context, fallback Logger) context.Context {
	if _, ok := ctx.Value(loggerKey).(Logger); ok || fallback == nil {
		return ctx
	}
	return WithLogger(ctx, fallback)
}
