// Package testutil provides testing utilities for vecbench.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random inputs, operand length tables around the vector
// batch width, and a bitwise comparison against the reference addition.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	a := rng.AlignedUniform(1024, 32, -100, 100)
//	buf := rng.Buffer(t, 1024, 32)
//
// # Verification
//
//	want := testutil.ReferenceAdd(a, b)
//	if i := testutil.FirstBitMismatch(want, got); i >= 0 { ... }
package testutil
