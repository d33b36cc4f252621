package vecbench

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

// MetricsCollector defines an interface for collecting benchmark metrics.
// Implement this interface to integrate with monitoring systems; see the
// metrics/prometheus package for a Prometheus implementation.
//
// Collectors are called outside the timed interval of each kernel call.
type MetricsCollector interface {
	// RecordKernel is called after each timed kernel invocation.
	RecordKernel(variant kernel.Variant, duration time.Duration)

	// RecordAllocation is called after each buffer allocation attempt.
	// bytes is the requested payload size, err is nil if successful.
	RecordAllocation(bytes int, backing buffer.Backing, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordKernel(kernel.Variant, time.Duration)  {}
func (NoopMetricsCollector) RecordAllocation(int, buffer.Backing, error) {}

const numVariants = 3

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	KernelCount      [numVariants]atomic.Int64
	KernelTotalNanos [numVariants]atomic.Int64
	AllocCount       atomic.Int64
	AllocBytes       atomic.Int64
	AllocErrors      atomic.Int64
}

// RecordKernel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordKernel(variant kernel.Variant, duration time.Duration) {
	if int(variant) >= numVariants {
		return
	}
	b.KernelCount[variant].Add(1)
	b.KernelTotalNanos[variant].Add(duration.Nanoseconds())
}

// RecordAllocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocation(bytes int, _ buffer.Backing, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		Kernels:     make(map[kernel.Variant]KernelStats, numVariants),
		AllocCount:  b.AllocCount.Load(),
		AllocBytes:  b.AllocBytes.Load(),
		AllocErrors: b.AllocErrors.Load(),
	}
	for _, v := range kernel.Variants() {
		count := b.KernelCount[v].Load()
		ks := KernelStats{Count: count}
		if count > 0 {
			ks.AvgNanos = b.KernelTotalNanos[v].Load() / count
		}
		stats.Kernels[v] = ks
	}
	return stats
}

// KernelStats summarizes the recorded invocations of one variant.
type KernelStats struct {
	Count    int64
	AvgNanos int64
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Kernels     map[kernel.Variant]KernelStats
	AllocCount  int64
	AllocBytes  int64
	AllocErrors int64
}
