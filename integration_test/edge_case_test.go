package integration_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbench"
	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

func TestEdgeCases(t *testing.T) {
	t.Run("zero iterations", func(t *testing.T) {
		a, err := buffer.Allocate(8, 1, kernel.Alignment)
		require.NoError(t, err)
		defer a.Release()

		_, err = vecbench.Measure(kernel.Scalar, a, a, 0)
		require.ErrorIs(t, err, vecbench.ErrInvalidIterationCount)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		a, err := buffer.Allocate(10, 1, buffer.NoAlignment)
		require.NoError(t, err)
		defer a.Release()
		b, err := buffer.Allocate(11, 2, buffer.NoAlignment)
		require.NoError(t, err)
		defer b.Release()

		for _, v := range kernel.Variants() {
			out, err := v.Add(a, b)
			require.ErrorIs(t, err, vecbench.ErrLengthMismatch, v.String())
			assert.Nil(t, out)
		}
	})

	t.Run("invalid alignment", func(t *testing.T) {
		_, err := buffer.Allocate(8, 0, 24)
		require.ErrorIs(t, err, vecbench.ErrAllocation)

		var allocErr *buffer.AllocationError
		require.True(t, errors.As(err, &allocErr))
		assert.Equal(t, 24, allocErr.Alignment)
	})

	t.Run("empty buffers", func(t *testing.T) {
		bm, err := vecbench.New(vecbench.WithSize(0), vecbench.WithIterations(3))
		require.NoError(t, err)

		report, err := bm.Run()
		require.NoError(t, err)
		assert.True(t, report.Consistent())
		for _, res := range report.Results {
			assert.Zero(t, res.Checksum)
			assert.Zero(t, res.Bytes)
		}
	})

	t.Run("every remainder", func(t *testing.T) {
		for n := 1; n < 2*kernel.BatchWidth; n++ {
			bm, err := vecbench.New(vecbench.WithSize(n), vecbench.WithIterations(1))
			require.NoError(t, err)

			report, err := bm.Run()
			require.NoError(t, err)
			for _, res := range report.Results {
				assert.Equal(t, float32(3*n), res.Checksum, "n=%d %s", n, res.Variant)
			}
		}
	})
}
