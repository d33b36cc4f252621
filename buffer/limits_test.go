//go:build amd64 || arm64

package buffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_RuntimeLimit(t *testing.T) {
	// Fits in int but exceeds what the runtime will hand out.
	_, err := Allocate(1<<60, 0, 32)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.True(t, errors.Is(err, ErrOutOfMemory) || errors.Is(err, ErrSizeOverflow))
}
