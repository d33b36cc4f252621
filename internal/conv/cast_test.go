package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := MulInt(0, math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := MulInt(1<<20, 4)
		assert.NoError(t, err)
		assert.Equal(t, 4<<20, got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := MulInt(-1, 4)
		assert.Error(t, err)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := MulInt(math.MaxInt/2, 4)
		assert.Error(t, err)
	})
}

func TestAddInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := AddInt(4096, 32)
		assert.NoError(t, err)
		assert.Equal(t, 4128, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := AddInt(math.MaxInt, 0)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := AddInt(math.MaxInt, 1)
		assert.Error(t, err)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := AddInt(1, -1)
		assert.Error(t, err)
	})
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		v, align, want int
	}{
		{0, 4096, 0},
		{1, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
		{33, 32, 64},
	}
	for _, tc := range tests {
		got, err := RoundUp(tc.v, tc.align)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := RoundUp(10, 3)
	assert.Error(t, err)

	_, err = RoundUp(math.MaxInt, 4096)
	assert.Error(t, err)
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 4, 32, 64, 4096, 1 << 30} {
		assert.True(t, IsPowerOfTwo(v), "%d", v)
	}
	for _, v := range []int{-32, 0, 3, 12, 33, 4095} {
		assert.False(t, IsPowerOfTwo(v), "%d", v)
	}
}
