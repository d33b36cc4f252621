package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/internal/mem"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// AlignedUniform returns n values in [minVal, maxVal) whose first element
// starts on an alignment-byte boundary.
func (r *RNG) AlignedUniform(n, alignment int, minVal, maxVal float32) []float32 {
	out := mem.AllocAlignedFloat32(n, alignment)
	r.FillUniformRange(out, minVal, maxVal)
	return out
}

// Buffer allocates a buffer of n random values in [-1000, 1000) and
// releases it when tb completes.
func (r *RNG) Buffer(tb testing.TB, n, alignment int, opts ...buffer.Option) *buffer.Buffer {
	tb.Helper()

	buf, err := buffer.Allocate(n, 0, alignment, opts...)
	if err != nil {
		tb.Fatalf("allocate %d elements: %v", n, err)
	}
	tb.Cleanup(func() {
		if err := buf.Release(); err != nil {
			tb.Errorf("release: %v", err)
		}
	})

	r.FillUniformRange(buf.Data(), -1000, 1000)
	return buf
}

// EdgeLengths returns operand lengths around multiples of width: zero,
// partial batches, exact batches and batches plus a remainder, followed by
// any extra lengths, sorted and without duplicates.
func EdgeLengths(width int, extra ...int) []int {
	seen := make(map[int]struct{})
	add := func(n int) {
		if n >= 0 {
			seen[n] = struct{}{}
		}
	}

	add(0)
	add(1)
	for _, k := range []int{1, 2, 4, 8} {
		add(k*width - 1)
		add(k * width)
		add(k*width + 1)
	}
	for _, n := range extra {
		add(n)
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// ReferenceAdd returns a[i]+b[i] for every i of a. b must be at least as long as a.
func ReferenceAdd(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// FirstBitMismatch returns the first index at which want and got differ in
// their IEEE-754 bit patterns, len(want) if got is shorter, or -1 if they are
// identical. NaNs with the same payload compare equal.
func FirstBitMismatch(want, got []float32) int {
	for i := range want {
		if i >= len(got) {
			return i
		}
		if math.Float32bits(want[i]) != math.Float32bits(got[i]) {
			return i
		}
	}
	if len(got) > len(want) {
		return len(want)
	}
	return -1
}
