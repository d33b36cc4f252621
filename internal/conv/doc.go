// Package conv provides overflow-checked integer arithmetic for size calculations.
//
// Buffer sizes are derived from user-supplied element counts and alignments.
// These helpers reject results that do not fit in an int instead of silently
// wrapping, so callers can report an allocation error before touching memory.
package conv
