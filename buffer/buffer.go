package buffer

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/hupe1980/vecbench/internal/conv"
	"github.com/hupe1980/vecbench/internal/mem"
	"github.com/hupe1980/vecbench/internal/mmap"
	"github.com/hupe1980/vecbench/internal/simd"
)

// NoAlignment requests a buffer without any alignment guarantee.
const NoAlignment = 0

const float32Size = 4

// adviseMapping hints the access pattern of a fresh mapping; kernels stream
// through buffers front to back.
var adviseMapping = func(m *mmap.Mapping) error {
	return m.Advise(mmap.AccessSequential)
}

// Buffer is an owned, contiguous sequence of float32 values with a fixed
// length and a declared alignment.
//
// A Buffer is not safe for concurrent use with Release.
type Buffer struct {
	data      []float32
	length    int
	addr      uintptr
	alignment int
	backing   Backing

	released   atomic.Bool
	release    func() error
	cleanup    runtime.Cleanup
	hasCleanup bool
}

// Allocate returns a buffer of length elements, each set to fill.
//
// If alignment is NoAlignment the buffer is an ordinary heap slice. Otherwise
// alignment must be a power of two and the first element's address is
// divisible by it, including for zero-length buffers.
//
// Every failure is an *AllocationError matching ErrAllocation.
func Allocate(length int, fill float32, alignment int, opts ...Option) (*Buffer, error) {
	o := options{backing: Heap}
	for _, opt := range opts {
		opt(&o)
	}

	fail := func(cause error) (*Buffer, error) {
		return nil, &AllocationError{Length: length, Alignment: alignment, Backing: o.backing, cause: cause}
	}

	if length < 0 {
		return fail(ErrInvalidLength)
	}
	if alignment != NoAlignment && !conv.IsPowerOfTwo(alignment) {
		return fail(ErrInvalidAlignment)
	}

	size, err := conv.MulInt(length, float32Size)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrSizeOverflow, err))
	}
	if _, err := conv.AddInt(size, alignment); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrSizeOverflow, err))
	}

	var b *Buffer
	switch o.backing {
	case Heap:
		b, err = allocHeap(length, alignment)
	case Mapped:
		b, err = allocMapped(length, size, alignment)
	default:
		err = ErrUnknownBacking
	}
	if err != nil {
		return fail(err)
	}

	for i := range b.data {
		b.data[i] = fill
	}
	return b, nil
}

func allocHeap(length, alignment int) (b *Buffer, err error) {
	// make panics (rather than returning) for lengths beyond the runtime limit.
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	var data []float32
	if alignment == NoAlignment {
		data = make([]float32, length)
	} else {
		data = mem.AllocAlignedFloat32(length, alignment)
		if data == nil {
			return nil, ErrSizeOverflow
		}
	}

	return &Buffer{
		data:      data,
		length:    length,
		addr:      mem.Addr(data),
		alignment: alignment,
		backing:   Heap,
	}, nil
}

func allocMapped(length, size, alignment int) (b *Buffer, err error) {
	pageSize := mmap.PageSize()

	// Pages are already aligned for anything up to the page size.
	pad := 0
	if alignment > pageSize {
		pad = alignment
	}
	total, err := conv.AddInt(size, pad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSizeOverflow, err)
	}
	total, err = conv.RoundUp(max(total, 1), pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSizeOverflow, err)
	}

	m, err := mmap.MapAnon(total)
	if err != nil {
		return nil, err
	}

	// From here on every exit path that does not hand the mapping to a
	// Buffer must unmap it, including panics.
	ok := false
	defer func() {
		if !ok {
			_ = m.Close()
		}
	}()

	if err := adviseMapping(m); err != nil {
		return nil, err
	}

	raw := m.Bytes()
	offset := mem.Offset(mem.Addr(raw), max(alignment, float32Size))
	data := mem.Float32s(raw[offset:], length)

	b = &Buffer{
		data:      data,
		length:    length,
		addr:      mem.Addr(raw[offset:]),
		alignment: alignment,
		backing:   Mapped,
		release:   m.Close,
	}
	b.cleanup = runtime.AddCleanup(b, func(m *mmap.Mapping) { _ = m.Close() }, m)
	b.hasCleanup = true

	ok = true
	return b, nil
}

// Len returns the number of elements. It never changes, even after Release.
func (b *Buffer) Len() int {
	return b.length
}

// Bytes returns the size of the buffer contents in bytes.
func (b *Buffer) Bytes() int {
	return b.length * float32Size
}

// Alignment returns the declared alignment, or NoAlignment.
func (b *Buffer) Alignment() int {
	return b.alignment
}

// Backing returns the memory source of the buffer.
func (b *Buffer) Backing() Backing {
	return b.backing
}

// Data returns the buffer contents.
//
// Warning: the slice is valid only until Release is called, and for mapped
// buffers only while the Buffer itself is reachable. Returns nil after Release.
func (b *Buffer) Data() []float32 {
	if b.released.Load() {
		return nil
	}
	return b.data
}

// Addr returns the address of the first element. It remains available after
// Release for diagnostics.
func (b *Buffer) Addr() uintptr {
	return b.addr
}

// AddrMod returns Addr() modulo n, or 0 if n is not positive.
func (b *Buffer) AddrMod(n int) uintptr {
	if n <= 0 {
		return 0
	}
	return b.addr % uintptr(n) //nolint:gosec // n > 0
}

// Sum returns the sequential float32 sum of the contents (the checksum).
// A released buffer sums to 0.
func (b *Buffer) Sum() float32 {
	sum := simd.Sum(b.Data())
	runtime.KeepAlive(b)
	return sum
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b.released.Load()
}

// Release returns the backing memory. It is idempotent: the memory is
// released exactly once and later calls return nil.
func (b *Buffer) Release() error {
	if b == nil || b.released.Swap(true) {
		return nil
	}
	if b.hasCleanup {
		b.cleanup.Stop()
	}
	b.data = nil
	if b.release != nil {
		return b.release()
	}
	return nil
}

// String implements fmt.Stringer.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(len=%d, alignment=%d, backing=%s, addr=%#x)", b.length, b.alignment, b.backing, b.addr)
}

// LogValue implements slog.LogValuer.
func (b *Buffer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", b.length),
		slog.Int("alignment", b.alignment),
		slog.String("backing", b.backing.String()),
		slog.String("addr", fmt.Sprintf("%#x", b.addr)),
	)
}
