package vecbench

import (
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

// Logger wraps slog.Logger with vecbench-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithVariant adds a variant field to the logger.
func (l *Logger) WithVariant(v kernel.Variant) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", v.String()),
	}
}

// LogAllocation logs a buffer allocation.
func (l *Logger) LogAllocation(role string, buf *buffer.Buffer, err error) {
	if err != nil {
		l.Error("allocation failed",
			"role", role,
			"error", err,
		)
		return
	}
	l.Debug("buffer allocated",
		"role", role,
		"buffer", buf,
	)
}

// LogRelease logs a failed buffer release. Successful releases are silent.
func (l *Logger) LogRelease(role string, err error) {
	if err != nil {
		l.Error("release failed",
			"role", role,
			"error", err,
		)
	}
}

// LogVariant logs the outcome of one measured variant.
func (l *Logger) LogVariant(res VariantResult) {
	l.Info("variant measured",
		"variant", res.Variant.String(),
		"mean", res.Mean,
		"checksum", res.Checksum,
		"addr_mod", res.AddrMod,
	)
}

// LogReport logs a completed benchmark.
func (l *Logger) LogReport(r *Report, elapsed time.Duration) {
	if !r.Consistent() {
		l.Warn("benchmark completed with diverging checksums",
			"size", r.Size,
			"iterations", r.Iterations,
			"elapsed", elapsed,
		)
		return
	}
	l.Info("benchmark completed",
		"size", r.Size,
		"iterations", r.Iterations,
		"isa", r.ISA,
		"elapsed", elapsed,
	)
}
