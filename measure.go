package vecbench

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

// TimingSeries holds the per-call durations of one variant and the result
// buffer of the last call.
type TimingSeries struct {
	Variant kernel.Variant
	Samples []time.Duration
	// Result is owned by the series; release it with Release.
	Result *buffer.Buffer
}

// Total returns the sum of all samples.
func (s *TimingSeries) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Samples {
		total += d
	}
	return total
}

// Mean returns Total divided by the number of samples, or 0 for an empty series.
func (s *TimingSeries) Mean() time.Duration {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Total() / time.Duration(len(s.Samples))
}

// MeanMillis returns the mean in milliseconds without integer truncation.
func (s *TimingSeries) MeanMillis() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return float64(s.Total()) / float64(len(s.Samples)) / float64(time.Millisecond)
}

// Release releases the result buffer.
func (s *TimingSeries) Release() error {
	if s == nil {
		return nil
	}
	return s.Result.Release()
}

// Measure times iterations calls of v over a and b.
//
// The result buffer is allocated before the first call and reused; each
// sample spans exactly one kernel call. For kernel.VectorizedAligned, a and b
// must be aligned to at least kernel.Alignment bytes. The returned series owns
// the result of the last call.
//
// Recognized options: WithAlignment, WithBacking, WithLogger and
// WithMetricsCollector.
func Measure(v kernel.Variant, a, b *buffer.Buffer, iterations int, opts ...Option) (*TimingSeries, error) {
	o := applyOptions(opts)
	o.iterations = iterations
	o.size = a.Len()
	if err := o.validate(); err != nil {
		return nil, err
	}
	return measure(v, a, b, &o)
}

func measure(v kernel.Variant, a, b *buffer.Buffer, o *options) (*TimingSeries, error) {
	if a.Len() != b.Len() {
		return nil, &kernel.LengthMismatchError{Operand: "b", Expected: a.Len(), Actual: b.Len()}
	}

	alignment := buffer.NoAlignment
	if v.RequiresAlignment() {
		alignment = o.alignment
	}
	dst, err := allocate(o, "result", a.Len(), 0, alignment)
	if err != nil {
		return nil, err
	}

	samples := make([]time.Duration, o.iterations)
	for i := range samples {
		start := time.Now()
		err := v.AddInto(dst, a, b)
		samples[i] = time.Since(start)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("iteration %d: %w", i, err), dst.Release())
		}
		o.metricsCollector.RecordKernel(v, samples[i])
	}

	return &TimingSeries{
		Variant: v,
		Samples: samples,
		Result:  dst,
	}, nil
}

// allocate allocates one buffer and reports it to the logger and metrics.
func allocate(o *options, role string, n int, fill float32, alignment int) (*buffer.Buffer, error) {
	buf, err := buffer.Allocate(n, fill, alignment, buffer.WithBacking(o.backing))
	bytes := 0
	if err == nil {
		bytes = buf.Bytes()
	}
	o.metricsCollector.RecordAllocation(bytes, o.backing, err)
	o.logger.LogAllocation(role, buf, err)
	if err != nil {
		return nil, fmt.Errorf("allocate %s: %w", role, err)
	}
	return buf, nil
}
