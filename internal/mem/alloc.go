package mem

import (
	"unsafe"

	"github.com/hupe1980/vecbench/internal/conv"
)

const (
	// AVXAlignment is the byte alignment of a 256-bit vector register.
	AVXAlignment = 32

	// CacheLineAlignment is the typical CPU cache line size in bytes.
	CacheLineAlignment = 64

	float32Size = 4
)

// Offset returns the number of bytes that must be added to addr to reach the
// next address divisible by alignment. alignment must be a power of two.
func Offset(addr uintptr, alignment int) int {
	mask := uintptr(alignment - 1) //nolint:gosec // alignment is a positive power of two
	return int((uintptr(alignment) - (addr & mask)) & mask)
}

// IsAligned reports whether ptr is divisible by alignment.
func IsAligned(ptr unsafe.Pointer, alignment int) bool {
	return uintptr(ptr)%uintptr(alignment) == 0 //nolint:gosec // alignment > 0
}

// AllocAligned allocates a byte slice of the given size whose first byte sits
// at an address divisible by alignment. alignment must be a power of two.
//
// The returned slice always has a capacity of at least one byte past its
// length, so even a zero-length result carries an aligned data pointer.
// The underlying array is kept alive by the returned slice.
//
// AllocAligned returns nil if size is negative, alignment is not a power of
// two, or the padded size overflows.
func AllocAligned(size, alignment int) []byte {
	if size < 0 || !conv.IsPowerOfTwo(alignment) {
		return nil
	}

	// Reserve size + alignment so the start can shift up by alignment-1 bytes
	// and still leave one spare byte of capacity.
	total, err := conv.AddInt(size, alignment)
	if err != nil {
		return nil
	}
	buf := make([]byte, total)

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) //nolint:gosec // unsafe is required for memory alignment
	offset := Offset(addr, alignment)

	return buf[offset : offset+size : offset+size+1]
}

// AllocAlignedFloat32 allocates a float32 slice of n elements whose first
// element sits at an address divisible by alignment.
//
// Alignments below 4 bytes are raised to the natural float32 alignment.
// AllocAlignedFloat32 returns nil on invalid arguments or overflow.
func AllocAlignedFloat32(n, alignment int) []float32 {
	size, err := conv.MulInt(n, float32Size)
	if err != nil {
		return nil
	}
	alignment = max(alignment, float32Size)

	raw := AllocAligned(size, alignment)
	if raw == nil {
		return nil
	}
	return Float32s(raw, n)
}

// Float32s reinterprets the start of b as n float32 values.
// b must be 4-byte aligned and hold at least n*4 bytes of capacity.
func Float32s(b []byte, n int) []float32 {
	ptr := unsafe.Pointer(unsafe.SliceData(b)) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float32)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}

// Addr returns the address of the first element of s, including for
// zero-length slices that still reference an array.
func Addr[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s))) //nolint:gosec // address is used for diagnostics only
}
