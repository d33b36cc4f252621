// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// An anonymous mapping is read-write memory obtained directly from the
// operating system, outside the Go garbage collector's control. Mappings are
// page aligned, which makes them a natural source for buffers that must start
// on a vector-register or cache-line boundary.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	_ = m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT (Advise is a no-op)
//   - Other platforms: MapAnon returns ErrUnsupported
//
// # Lifetime
//
// Close is idempotent and protected by an atomic flag: the memory is returned
// to the operating system exactly once. Callers must not touch Bytes() after
// Close returns.
package mmap
