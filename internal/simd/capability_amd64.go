//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	// HasAVX also requires the OS to save YMM state (OSXSAVE + XCR0).
	hasAVX = cpu.X86.HasAVX
	initCapabilities()
}
