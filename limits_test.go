//go:build amd64 || arm64

package vecbench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

type allocationRecord struct {
	bytes int
	err   error
}

type recordingCollector struct {
	NoopMetricsCollector
	allocs []allocationRecord
}

func (c *recordingCollector) RecordAllocation(bytes int, _ buffer.Backing, err error) {
	c.allocs = append(c.allocs, allocationRecord{bytes: bytes, err: err})
}

func (c *recordingCollector) RecordKernel(kernel.Variant, time.Duration) {}

func TestBenchmark_RunAllocationOverflow(t *testing.T) {
	rec := &recordingCollector{}
	bm, err := New(WithSize(1<<60), WithIterations(1), WithMetricsCollector(rec))
	require.NoError(t, err)

	report, err := bm.Run()
	require.ErrorIs(t, err, ErrAllocation)
	assert.Nil(t, report)

	require.Len(t, rec.allocs, 1)
	assert.Zero(t, rec.allocs[0].bytes)
	require.Error(t, rec.allocs[0].err)

	basic := &BasicMetricsCollector{}
	bm, err = New(WithSize(1<<60), WithIterations(1), WithMetricsCollector(basic))
	require.NoError(t, err)
	_, err = bm.Run()
	require.Error(t, err)

	stats := basic.GetStats()
	assert.Equal(t, int64(1), stats.AllocErrors)
	assert.Zero(t, stats.AllocBytes)
}
