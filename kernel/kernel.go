package kernel

import (
	"errors"
	"runtime"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/internal/mem"
	"github.com/hupe1980/vecbench/internal/simd"
)

const (
	// BatchWidth is the number of float32 lanes per vector operation.
	BatchWidth = simd.BatchWidth

	// Alignment is the byte alignment VectorizedAligned requires of its operands.
	Alignment = mem.AVXAlignment
)

// Variant identifies one addition kernel.
type Variant uint8

const (
	// Scalar adds element by element, no batching.
	Scalar Variant = iota
	// VectorizedUnaligned adds in vector batches without assuming alignment.
	VectorizedUnaligned
	// VectorizedAligned adds in vector batches and assumes Alignment-byte operands.
	VectorizedAligned
)

// Variants returns every kernel variant, Scalar first.
func Variants() []Variant {
	return []Variant{Scalar, VectorizedUnaligned, VectorizedAligned}
}

// String returns the string representation of a Variant.
func (v Variant) String() string {
	switch v {
	case Scalar:
		return "scalar"
	case VectorizedUnaligned:
		return "vectorized-unaligned"
	case VectorizedAligned:
		return "vectorized-aligned"
	default:
		return "unknown"
	}
}

// RequiresAlignment reports whether the variant needs Alignment-byte operands.
func (v Variant) RequiresAlignment() bool {
	return v == VectorizedAligned
}

func (v Variant) impl() (func(dst, a, b []float32), error) {
	switch v {
	case Scalar:
		return simd.AddScalar, nil
	case VectorizedUnaligned:
		return simd.AddUnaligned, nil
	case VectorizedAligned:
		return simd.AddAligned, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// Add returns a new buffer holding a[i] + b[i].
//
// The output is aligned to Alignment for VectorizedAligned and unaligned
// otherwise; opts select its backing. For VectorizedAligned, a and b must be
// Alignment-byte aligned.
func (v Variant) Add(a, b *buffer.Buffer, opts ...buffer.Option) (*buffer.Buffer, error) {
	if _, err := v.impl(); err != nil {
		return nil, err
	}
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	alignment := buffer.NoAlignment
	if v.RequiresAlignment() {
		alignment = Alignment
	}
	dst, err := buffer.Allocate(a.Len(), 0, alignment, opts...)
	if err != nil {
		return nil, err
	}

	if err := v.AddInto(dst, a, b); err != nil {
		return nil, errors.Join(err, dst.Release())
	}
	return dst, nil
}

// AddInto writes a[i] + b[i] into the caller-owned dst.
//
// For VectorizedAligned, dst, a and b must be Alignment-byte aligned. This is
// a precondition, not a runtime check.
func (v Variant) AddInto(dst, a, b *buffer.Buffer) error {
	fn, err := v.impl()
	if err != nil {
		return err
	}
	if err := checkOperands(a, b); err != nil {
		return err
	}
	if dst.Len() != a.Len() {
		return &LengthMismatchError{Operand: "dst", Expected: a.Len(), Actual: dst.Len()}
	}
	if dst.Released() {
		return ErrReleased
	}

	fn(dst.Data(), a.Data(), b.Data())

	// Mapped buffers are unmapped by a cleanup once unreachable; keep the
	// owners alive until the kernel has finished with their memory.
	runtime.KeepAlive(dst)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	return nil
}

func checkOperands(a, b *buffer.Buffer) error {
	if a.Len() != b.Len() {
		return &LengthMismatchError{Operand: "b", Expected: a.Len(), Actual: b.Len()}
	}
	if a.Released() || b.Released() {
		return ErrReleased
	}
	return nil
}
