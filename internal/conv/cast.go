package conv

import (
	"fmt"
	"math"
)

// MulInt returns a*b, or an error if either operand is negative or the
// product overflows int.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d (negative operand)", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}

// AddInt returns a+b, or an error if either operand is negative or the sum
// overflows int.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d (negative operand)", a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds max int", a, b)
	}
	return a + b, nil
}

// RoundUp rounds v up to the next multiple of align, which must be a power of two.
func RoundUp(v, align int) (int, error) {
	if align <= 0 || align&(align-1) != 0 {
		return 0, fmt.Errorf("invalid rounding alignment: %d", align)
	}
	sum, err := AddInt(v, align-1)
	if err != nil {
		return 0, err
	}
	return sum &^ (align - 1), nil
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
