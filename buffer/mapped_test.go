//go:build unix || windows

package buffer

import (
	"errors"
	"testing"

	"github.com/hupe1980/vecbench/internal/mmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateMapped_Alignment(t *testing.T) {
	alignments := []int{NoAlignment, 32, 64, mmap.PageSize(), 4 * mmap.PageSize()}
	for _, alignment := range alignments {
		for _, n := range []int{0, 1, 1024, 1 << 20} {
			buf, err := Allocate(n, 3, alignment, WithBacking(Mapped))
			require.NoError(t, err)

			assert.Equal(t, Mapped, buf.Backing())
			assert.Equal(t, n, buf.Len())
			if alignment != NoAlignment {
				assert.Equal(t, uintptr(0), buf.AddrMod(alignment), "len=%d alignment=%d", n, alignment)
			}
			assert.Equal(t, float32(3*n), buf.Sum())

			require.NoError(t, buf.Release())
		}
	}
}

func TestAllocateMapped_ReleaseOnce(t *testing.T) {
	buf, err := Allocate(4096, 1, 32, WithBacking(Mapped))
	require.NoError(t, err)

	calls := 0
	release := buf.release
	buf.release = func() error {
		calls++
		return release()
	}

	require.NoError(t, buf.Release())
	require.NoError(t, buf.Release())
	assert.Equal(t, 1, calls)
	assert.Nil(t, buf.Data())
}

func TestAllocateMapped_ReleasedOnInitFailure(t *testing.T) {
	orig := adviseMapping
	defer func() { adviseMapping = orig }()

	errAdvise := errors.New("advise failed")
	var seen *mmap.Mapping
	adviseMapping = func(m *mmap.Mapping) error {
		seen = m
		return errAdvise
	}

	buf, err := Allocate(1024, 1, 32, WithBacking(Mapped))
	require.Error(t, err)
	assert.Nil(t, buf)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, errAdvise)

	require.NotNil(t, seen)
	assert.True(t, seen.Closed(), "mapping must be released when initialization fails")
}

func TestAllocateMapped_ReleasedOnPanic(t *testing.T) {
	orig := adviseMapping
	defer func() { adviseMapping = orig }()

	var seen *mmap.Mapping
	adviseMapping = func(m *mmap.Mapping) error {
		seen = m
		panic("boom")
	}

	assert.Panics(t, func() {
		_, _ = Allocate(1024, 1, 32, WithBacking(Mapped))
	})

	require.NotNil(t, seen)
	assert.True(t, seen.Closed(), "mapping must be released when initialization panics")
}
