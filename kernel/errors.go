package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch matches every *LengthMismatchError via errors.Is.
	ErrLengthMismatch = errors.New("kernel: length mismatch")
	// ErrReleased is returned when an operand has already been released.
	ErrReleased = errors.New("kernel: buffer released")
	// ErrUnknownVariant is returned for a Variant outside the defined set.
	ErrUnknownVariant = errors.New("kernel: unknown variant")
)

// LengthMismatchError indicates operands of different lengths.
type LengthMismatchError struct {
	Operand  string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("kernel: length mismatch: %s has %d elements, expected %d", e.Operand, e.Actual, e.Expected)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }
