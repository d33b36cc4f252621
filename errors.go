package vecbench

import (
	"errors"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

var (
	// ErrInvalidIterationCount is returned when fewer than one iteration is requested.
	ErrInvalidIterationCount = errors.New("iteration count must be positive")

	// ErrInvalidSize is returned when a negative buffer size is configured.
	ErrInvalidSize = errors.New("size must not be negative")

	// ErrInvalidAlignment is returned when the aligned-variant alignment is not
	// a power of two of at least kernel.Alignment bytes.
	ErrInvalidAlignment = errors.New("alignment must be a power of two and at least 32 bytes")

	// ErrAllocation matches every buffer allocation failure.
	ErrAllocation = buffer.ErrAllocation

	// ErrLengthMismatch matches every kernel operand length mismatch.
	ErrLengthMismatch = kernel.ErrLengthMismatch
)
