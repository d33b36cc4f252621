// Package buffer allocates fixed-length float32 buffers with an optional
// start-address alignment guarantee.
//
// # Allocation
//
//	buf, err := buffer.Allocate(1<<20, 1.0, 32)
//	if err != nil { ... }
//	defer buf.Release()
//
// An alignment of NoAlignment requests an ordinary heap slice. Any other
// alignment must be a power of two; the first element of the returned buffer
// sits at an address divisible by it for the buffer's entire lifetime.
//
// # Backing Memory
//
//   - Heap (default): over-allocates from the Go heap and slices at the first
//     aligned offset. Release drops the buffer's reference.
//   - Mapped: anonymous memory mapping outside the Go heap. Release unmaps it.
//
// # Lifetime
//
// Release returns the backing memory exactly once; further calls are no-ops.
// A mapped allocation that fails after the mapping was acquired releases it
// before the error is returned. Mapped buffers that become unreachable without
// Release are unmapped by a runtime cleanup.
package buffer
