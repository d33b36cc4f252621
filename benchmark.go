package vecbench

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/internal/simd"
	"github.com/hupe1980/vecbench/kernel"
)

// Benchmark runs the three-way addition comparison.
type Benchmark struct {
	opts options
}

// New creates a Benchmark. Without options it measures 1,048,576 elements
// over 100 iterations with 32-byte aligned buffers for the aligned variant.
func New(opts ...Option) (*Benchmark, error) {
	o := applyOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Benchmark{opts: o}, nil
}

// Run measures every kernel variant in order, Scalar first, and returns the
// aggregated report. Any allocation or kernel error aborts the run; buffers
// allocated so far are released on every exit path.
func (bm *Benchmark) Run() (*Report, error) {
	start := time.Now()
	o := &bm.opts

	report := &Report{
		Size:          o.size,
		Iterations:    o.iterations,
		ISA:           simd.ActiveISA().String(),
		DiagAlignment: DiagAlignment,
		Results:       make([]VariantResult, 0, len(kernel.Variants())),
	}

	for _, v := range kernel.Variants() {
		res, err := bm.runVariant(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		report.Results = append(report.Results, res)
	}
	report.computeSpeedups()

	o.logger.LogReport(report, time.Since(start))
	return report, nil
}

// runVariant measures v over its own freshly allocated a, b and result buffers.
func (bm *Benchmark) runVariant(v kernel.Variant) (res VariantResult, err error) {
	o := &bm.opts
	logger := o.logger.WithVariant(v)

	alignment := buffer.NoAlignment
	if v.RequiresAlignment() {
		alignment = o.alignment
	}

	a, err := allocate(o, "a", o.size, o.fillA, alignment)
	if err != nil {
		return res, err
	}
	defer func() { err = errors.Join(err, release(logger, "a", a)) }()

	b, err := allocate(o, "b", o.size, o.fillB, alignment)
	if err != nil {
		return res, err
	}
	defer func() { err = errors.Join(err, release(logger, "b", b)) }()

	series, err := measure(v, a, b, o)
	if err != nil {
		return res, err
	}
	defer func() { err = errors.Join(err, release(logger, "result", series.Result)) }()

	res = VariantResult{
		Variant:   v,
		Mean:      series.Mean(),
		MeanMs:    series.MeanMillis(),
		Checksum:  series.Result.Sum(),
		Addr:      a.Addr(),
		AddrMod:   a.AddrMod(DiagAlignment),
		Alignment: alignment,
		Backing:   a.Backing(),
		Bytes:     a.Bytes(),
	}
	o.logger.LogVariant(res)
	return res, nil
}

func release(logger *Logger, role string, buf *buffer.Buffer) error {
	err := buf.Release()
	logger.LogRelease(role, err)
	if err != nil {
		return fmt.Errorf("release %s: %w", role, err)
	}
	return nil
}
