// Package mem provides aligned memory allocation utilities.
//
// # Aligned Allocation
//
// Allocations over-reserve from the Go heap and return a view starting at the
// first address divisible by the requested power-of-two alignment. The
// default alignment of 32 bytes matches one 256-bit AVX register.
package mem
