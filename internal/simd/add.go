package simd

// BatchWidth is the number of float32 lanes processed per vector operation
// (one 256-bit register).
const BatchWidth = 8

var (
	addUnalignedImpl = addBatchedGeneric
	addAlignedImpl   = addBatchedGeneric
)

// AddScalar computes dst[i] = a[i] + b[i] one element at a time.
//
// SAFETY: This function assumes len(a) >= len(dst) and len(b) >= len(dst).
// Callers MUST check lengths.
func AddScalar(dst, a, b []float32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddUnaligned computes dst[i] = a[i] + b[i] in batches of BatchWidth using
// unaligned vector loads and stores; the tail is added with scalar code.
//
// SAFETY: This function assumes len(a) >= len(dst) and len(b) >= len(dst).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func AddUnaligned(dst, a, b []float32) {
	addUnalignedImpl(dst, a, b)
}

// AddAligned computes dst[i] = a[i] + b[i] in batches of BatchWidth using
// aligned vector loads and stores; the tail is added with scalar code.
//
// SAFETY: In addition to the AddUnaligned length requirements, dst, a and b
// MUST start on a 32-byte boundary. This is not checked. On AVX hardware a
// misaligned operand faults.
func AddAligned(dst, a, b []float32) {
	addAlignedImpl(dst, a, b)
}

// Sum returns the sequential float32 sum of a, left to right.
func Sum(a []float32) float32 {
	var sum float32
	for _, v := range a {
		sum += v
	}
	return sum
}

// batchEnd returns the number of leading elements covered by full batches.
func batchEnd(n int) int {
	return n &^ (BatchWidth - 1)
}

func addBatchedGeneric(dst, a, b []float32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	n := batchEnd(len(dst))

	for i := 0; i < n; i += BatchWidth {
		d := (*[BatchWidth]float32)(dst[i:])
		x := (*[BatchWidth]float32)(a[i:])
		y := (*[BatchWidth]float32)(b[i:])

		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
		d[4] = x[4] + y[4]
		d[5] = x[5] + y[5]
		d[6] = x[6] + y[6]
		d[7] = x[7] + y[7]
	}

	addRemainder(dst, a, b, n)
}

// addRemainder adds the elements from start to the end of dst one at a time.
func addRemainder(dst, a, b []float32, start int) {
	for i := start; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}
