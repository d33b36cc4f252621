//go:build amd64 && !noasm

package simd

import "unsafe"

func setKernels(isa ISA) {
	switch isa {
	case AVX:
		addUnalignedImpl = addUnalignedAVX
		addAlignedImpl = addAlignedAVX
	default:
		addUnalignedImpl = addBatchedGeneric
		addAlignedImpl = addBatchedGeneric
	}
}

// n must be a multiple of BatchWidth.
//
//go:noescape
func addUnalignedAvx(a, b, dst unsafe.Pointer, n int64)

// n must be a multiple of BatchWidth; a, b and dst must be 32-byte aligned.
//
//go:noescape
func addAlignedAvx(a, b, dst unsafe.Pointer, n int64)

func addUnalignedAVX(dst, a, b []float32) {
	n := batchEnd(len(dst))
	if n > 0 {
		addUnalignedAvx(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&dst[0]), int64(n))
	}
	addRemainder(dst, a, b, n)
}

func addAlignedAVX(dst, a, b []float32) {
	n := batchEnd(len(dst))
	if n > 0 {
		addAlignedAvx(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&dst[0]), int64(n))
	}
	addRemainder(dst, a, b, n)
}
