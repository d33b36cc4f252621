// Package simd provides SIMD-optimized float32 addition kernels.
//
// # Supported Platforms
//
//   - x86-64: AVX (256-bit, 8 float32 lanes)
//   - everything else: 8-lane unrolled pure Go
//
// Runtime CPU feature detection selects the implementation.
// Build with -tags noasm to force the generic Go fallback, or set
// VECBENCH_SIMD=generic to select it at runtime.
//
// # Operations
//
//   - AddScalar: element-by-element reference loop
//   - AddUnaligned: batched unaligned vector load/add/store plus scalar remainder
//   - AddAligned: batched aligned vector load/add/store plus scalar remainder
//   - Sum: sequential float32 checksum
//
// All kernels produce bit-identical results for finite inputs.
package simd
