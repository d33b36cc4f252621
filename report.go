package vecbench

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

// VariantResult aggregates the measurements of one kernel variant.
type VariantResult struct {
	Variant kernel.Variant
	// Mean is the mean duration of one kernel call.
	Mean time.Duration
	// MeanMs is the untruncated mean in milliseconds.
	MeanMs float64
	// Speedup is the scalar mean divided by this variant's mean.
	// It is exactly 1 for Scalar and 0 when the mean is zero.
	Speedup float64
	// Checksum is the sequential sum of the result buffer.
	Checksum float32
	// Addr is the address of the variant's a buffer.
	Addr uintptr
	// AddrMod is Addr modulo the report's DiagAlignment.
	AddrMod   uintptr
	Alignment int
	Backing   buffer.Backing
	Bytes     int
}

// Report is the outcome of a Benchmark run.
type Report struct {
	Size          int
	Iterations    int
	ISA           string
	DiagAlignment int
	Results       []VariantResult
}

// Speedup returns base/mean, or 0 if mean is not positive.
func Speedup(base, mean float64) float64 {
	if mean <= 0 {
		return 0
	}
	return base / mean
}

func (r *Report) computeSpeedups() {
	scalar, ok := r.Result(kernel.Scalar)
	if !ok {
		return
	}
	for i := range r.Results {
		if r.Results[i].Variant == kernel.Scalar {
			r.Results[i].Speedup = 1.0
			continue
		}
		r.Results[i].Speedup = Speedup(scalar.MeanMs, r.Results[i].MeanMs)
	}
}

// Result returns the result for v.
func (r *Report) Result(v kernel.Variant) (VariantResult, bool) {
	for _, res := range r.Results {
		if res.Variant == v {
			return res, true
		}
	}
	return VariantResult{}, false
}

// Consistent reports whether every variant produced the same checksum.
// NaN checksums never agree.
func (r *Report) Consistent() bool {
	for _, res := range r.Results {
		if res.Checksum != r.Results[0].Checksum {
			return false
		}
	}
	return true
}

// variantLabels are the long and short display names of each variant.
var variantLabels = map[kernel.Variant][2]string{
	kernel.Scalar:              {"Regular Addition", "Regular"},
	kernel.VectorizedUnaligned: {"SIMD Addition", "SIMD"},
	kernel.VectorizedAligned:   {"Aligned SIMD", "Aligned"},
}

func label(v kernel.Variant, short bool) string {
	l, ok := variantLabels[v]
	if !ok {
		return v.String()
	}
	if short {
		return l[1]
	}
	return l[0]
}

func formatChecksum(c float32) string {
	return strconv.FormatFloat(float64(c), 'f', -1, 32)
}

func formatSpeedup(s float64) string {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", s)
}

// WriteTo writes the human-readable report to w. It implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "Vector Addition Benchmark")
	fmt.Fprintf(&buf, "Array size: %s elements (%s per buffer)\n",
		humanize.Comma(int64(r.Size)), humanize.IBytes(uint64(r.Size)*4)) //nolint:gosec // size is validated non-negative
	fmt.Fprintf(&buf, "Iterations: %d\n", r.Iterations)
	fmt.Fprintf(&buf, "Kernel ISA: %s\n\n", r.ISA)

	for i, res := range r.Results {
		fmt.Fprintf(&buf, "%d. %-20s: %.3f ms (%s speedup)\n",
			i+1, label(res.Variant, false), res.MeanMs, formatSpeedup(res.Speedup))
	}

	fmt.Fprintln(&buf, "\nVerification:")
	for _, res := range r.Results {
		fmt.Fprintf(&buf, "%-12s: %s\n", label(res.Variant, true)+" sum", formatChecksum(res.Checksum))
	}
	if r.Consistent() {
		fmt.Fprintln(&buf, "Checksums agree")
	} else {
		fmt.Fprintln(&buf, "Checksums DIFFER")
	}

	fmt.Fprintln(&buf, "\nMemory Alignment:")
	for _, res := range r.Results {
		fmt.Fprintf(&buf, "%-8s: %#x (mod %d = %d, %s, %s)\n",
			label(res.Variant, true), res.Addr, r.DiagAlignment, res.AddrMod,
			formatAlignment(res.Alignment), res.Backing)
	}

	return buf.WriteTo(w)
}

func formatAlignment(a int) string {
	if a == buffer.NoAlignment {
		return "unaligned request"
	}
	return fmt.Sprintf("%d-byte aligned request", a)
}
