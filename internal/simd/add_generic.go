//go:build !amd64 || noasm

package simd

func setKernels(_ ISA) {
	addUnalignedImpl = addBatchedGeneric
	addAlignedImpl = addBatchedGeneric
}
