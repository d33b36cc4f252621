// Package vecbench measures element-wise float32 vector addition three ways:
// a scalar loop, vectorized addition with unaligned loads and stores, and
// vectorized addition over 32-byte aligned buffers.
//
// # Quick Start
//
//	bm, _ := vecbench.New()
//	report, err := bm.Run()
//	if err != nil { ... }
//	report.WriteTo(os.Stdout)
//
// Run allocates a fresh input/output triple per variant, times each kernel
// call individually, and reduces the samples to a mean. The report carries the
// mean time, the speedup over the scalar kernel, a checksum of the result
// buffer, and the input buffer's address modulo 32.
//
// # Measuring a Single Kernel
//
//	a, _ := buffer.Allocate(1<<20, 1, 32)
//	b, _ := buffer.Allocate(1<<20, 2, 32)
//	series, err := vecbench.Measure(kernel.VectorizedAligned, a, b, 100)
//	defer series.Release()
//	fmt.Println(series.Mean(), series.Result.Sum())
//
// # Methodology
//
// Every iteration is timed, including the first. There is no warm-up
// discarding and no outlier rejection; the mean is sum(samples)/iterations.
// Execution is single-threaded and synchronous.
//
// # Kernel Selection
//
// The vectorized kernels use AVX assembly on x86-64 when the CPU supports it
// and an unrolled pure-Go loop elsewhere. Set VECBENCH_SIMD=generic to force
// the pure-Go path, or build with -tags noasm.
package vecbench
