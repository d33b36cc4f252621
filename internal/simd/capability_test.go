package simd

import (
	"testing"

	"github.com/hupe1980/vecbench/internal/mem"
	"github.com/stretchr/testify/assert"
)

func TestInitCapabilities_EnvOverride(t *testing.T) {
	prevISA, prevOverride := ActiveISA(), IsOverridden()
	t.Cleanup(func() {
		useISA(prevISA)
		hasOverride = prevOverride
	})

	best := selectBestISA()

	tests := []struct {
		env        string
		want       ISA
		overridden bool
	}{
		{"generic", Generic, true},
		{"GENERIC", Generic, true},
		{"avx", AVX, true},
		{"neon", best, false},
		{"bogus", best, false},
		{"", best, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if tt.want == AVX && !HasAVX() {
				tt.want, tt.overridden = best, false
			}
			t.Setenv(EnvISA, tt.env)

			initCapabilities()

			assert.Equal(t, tt.want, ActiveISA())
			assert.Equal(t, tt.overridden, IsOverridden())

			a := mem.AllocAlignedFloat32(9, mem.AVXAlignment)
			b := mem.AllocAlignedFloat32(9, mem.AVXAlignment)
			dst := mem.AllocAlignedFloat32(9, mem.AVXAlignment)
			for i := range a {
				a[i], b[i] = 1, 2
			}
			AddAligned(dst, a, b)
			assert.Equal(t, float32(27), Sum(dst))
		})
	}
}

// An ignored override must not keep a flag left by an earlier accepted one.
func TestInitCapabilities_OverrideReset(t *testing.T) {
	prevISA, prevOverride := ActiveISA(), IsOverridden()
	t.Cleanup(func() {
		useISA(prevISA)
		hasOverride = prevOverride
	})

	t.Setenv(EnvISA, "generic")
	initCapabilities()
	assert.True(t, IsOverridden())

	t.Setenv(EnvISA, "bogus")
	initCapabilities()
	assert.False(t, IsOverridden())
	assert.Equal(t, selectBestISA(), ActiveISA())
}
