package vecbench

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/internal/conv"
	"github.com/hupe1980/vecbench/kernel"
)

const (
	// DefaultSize is the number of elements per buffer.
	DefaultSize = 1024 * 1024
	// DefaultIterations is the number of timed kernel calls per variant.
	DefaultIterations = 100
	// DefaultAlignment is the alignment of the aligned variant's buffers.
	DefaultAlignment = kernel.Alignment
	// DefaultFillA and DefaultFillB are the input fill values.
	DefaultFillA float32 = 1.0
	DefaultFillB float32 = 2.0
	// DiagAlignment is the modulus reported in alignment diagnostics.
	DiagAlignment = kernel.Alignment
)

type options struct {
	size             int
	iterations       int
	fillA, fillB     float32
	alignment        int
	backing          buffer.Backing
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		size:             DefaultSize,
		iterations:       DefaultIterations,
		fillA:            DefaultFillA,
		fillB:            DefaultFillB,
		alignment:        DefaultAlignment,
		backing:          buffer.Heap,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) validate() error {
	if o.size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, o.size)
	}
	if o.iterations <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterationCount, o.iterations)
	}
	if !conv.IsPowerOfTwo(o.alignment) || o.alignment < kernel.Alignment {
		return fmt.Errorf("%w: %d", ErrInvalidAlignment, o.alignment)
	}
	return nil
}

// Option configures a Benchmark or a Measure call.
type Option func(*options)

// WithSize sets the number of elements per buffer.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithIterations sets the number of timed kernel calls per variant.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithFill sets the values the a and b input buffers are filled with.
func WithFill(a, b float32) Option {
	return func(o *options) {
		o.fillA = a
		o.fillB = b
	}
}

// WithAlignment sets the byte alignment of the aligned variant's buffers.
// It must be a power of two and at least kernel.Alignment.
func WithAlignment(n int) Option {
	return func(o *options) {
		o.alignment = n
	}
}

// WithBacking selects the memory source for every benchmark buffer.
func WithBacking(b buffer.Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}

// WithMetricsCollector configures a metrics collector for kernel timings
// and allocations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecbench.BasicMetricsCollector{}
//	bm, _ := vecbench.New(vecbench.WithMetricsCollector(metrics))
//	_, _ = bm.Run()
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecbench.NewJSONLogger(slog.LevelInfo)
//	bm, _ := vecbench.New(vecbench.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
