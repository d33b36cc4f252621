package simd

import (
	"os"
	"strings"
)

// EnvISA is the environment variable that overrides ISA selection.
const EnvISA = "VECBENCH_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// AVX represents x86-64 AVX (256-bit SIMD).
	AVX
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX:
		return "avx"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "avx":
		return AVX, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if VECBENCH_SIMD selected the ISA.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasAVX bool // x86-64 AVX with OS YMM state support
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA = selectBestISA()
	hasOverride = false

	if override := os.Getenv(EnvISA); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
		}
		// Unknown or unavailable override - keep auto-detection
	}

	setKernels(activeISA)
}

// isISAAvailable checks if an ISA is supported on this CPU and build.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case AVX:
		return hasAVX
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	if hasAVX {
		return AVX
	}
	return Generic
}

// useISA switches the active kernels and returns the previously active ISA.
// It is not safe for concurrent use with running kernels.
func useISA(isa ISA) ISA {
	prev := activeISA
	activeISA = isa
	setKernels(isa)
	return prev
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if VECBENCH_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX returns true if x86-64 AVX kernels are available.
func HasAVX() bool {
	return hasAVX
}
