// Package prometheus exports vecbench kernel timings and allocations as
// Prometheus metrics.
package prometheus

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/vecbench"
	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
)

// Namespace prefixes every metric name.
const Namespace = "vecbench"

var _ vecbench.MetricsCollector = (*Collector)(nil)

// Collector implements vecbench.MetricsCollector on top of Prometheus.
type Collector struct {
	kernelLatency *prom.HistogramVec
	allocations   *prom.CounterVec
	allocBytes    *prom.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prom.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	c := &Collector{
		kernelLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: Namespace,
			Name:      "kernel_duration_seconds",
			Help:      "Duration of a single addition kernel call",
			// 1µs .. ~0.5s
			Buckets: prom.ExponentialBuckets(1e-6, 2, 20),
		}, []string{"variant"}),
		allocations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "allocations_total",
			Help:      "Buffer allocations by backing and status",
		}, []string{"backing", "status"}),
		allocBytes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "allocated_bytes_total",
			Help:      "Bytes requested by successful buffer allocations",
		}, []string{"backing"}),
	}

	// All or nothing: a failed registration unregisters the earlier ones.
	cols := []prom.Collector{c.kernelLatency, c.allocations, c.allocBytes}
	for i, col := range cols {
		if err := reg.Register(col); err != nil {
			for _, registered := range cols[:i] {
				reg.Unregister(registered)
			}
			return nil, err
		}
	}

	return c, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(reg prom.Registerer) *Collector {
	c, err := New(reg)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordKernel observes one kernel call.
func (c *Collector) RecordKernel(v kernel.Variant, d time.Duration) {
	c.kernelLatency.WithLabelValues(v.String()).Observe(d.Seconds())
}

// RecordAllocation counts one buffer allocation.
func (c *Collector) RecordAllocation(bytes int, backing buffer.Backing, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.allocations.WithLabelValues(backing.String(), status).Inc()
	if err == nil && bytes > 0 {
		c.allocBytes.WithLabelValues(backing.String()).Add(float64(bytes))
	}
}
