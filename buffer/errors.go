package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation matches every *AllocationError via errors.Is.
	ErrAllocation = errors.New("buffer: allocation failed")

	// ErrInvalidLength is the cause when a negative length is requested.
	ErrInvalidLength = errors.New("length must not be negative")
	// ErrInvalidAlignment is the cause when the alignment is not a power of two.
	ErrInvalidAlignment = errors.New("alignment must be a power of two")
	// ErrSizeOverflow is the cause when the byte size does not fit the address space.
	ErrSizeOverflow = errors.New("size overflows address space")
	// ErrOutOfMemory is the cause when the runtime refuses the allocation.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrUnknownBacking is the cause when an unsupported backing is requested.
	ErrUnknownBacking = errors.New("unknown backing")
)

// AllocationError reports a failed Allocate call.
//
// The underlying cause can be accessed via errors.Unwrap.
type AllocationError struct {
	Length    int
	Alignment int
	Backing   Backing
	cause     error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("buffer: allocation failed (length=%d, alignment=%d, backing=%s): %v",
		e.Length, e.Alignment, e.Backing, e.cause)
}

func (e *AllocationError) Unwrap() error { return e.cause }

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }
