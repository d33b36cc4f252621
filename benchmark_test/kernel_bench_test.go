package benchmark_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/hupe1980/vecbench/buffer"
	"github.com/hupe1980/vecbench/kernel"
	"github.com/hupe1980/vecbench/testutil"
)

// One kernel call per b.Loop iteration; inputs and output are allocated
// before the loop. Compare builds with benchstat:
//
//	go test ./benchmark_test -run '^$' -bench . -count 10 > avx.txt
//	go test ./benchmark_test -run '^$' -bench . -count 10 -tags noasm > generic.txt
//	benchstat generic.txt avx.txt

var sizes = []int{1 << 10, 1 << 16, 1 << 20}

func benchVariant(b *testing.B, v kernel.Variant, alignment int, opts ...buffer.Option) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := testutil.NewRNG(1)
			x := rng.Buffer(b, n, alignment, opts...)
			y := rng.Buffer(b, n, alignment, opts...)

			dst, err := buffer.Allocate(n, 0, alignment, opts...)
			if err != nil {
				b.Fatal(err)
			}
			defer dst.Release()

			runtime.GC()
			b.SetBytes(int64(n) * 4 * 3)
			b.ReportAllocs()
			for b.Loop() {
				if err := v.AddInto(dst, x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScalar(b *testing.B) {
	benchVariant(b, kernel.Scalar, buffer.NoAlignment)
}

func BenchmarkVectorizedUnaligned(b *testing.B) {
	benchVariant(b, kernel.VectorizedUnaligned, buffer.NoAlignment)
}

func BenchmarkVectorizedUnaligned_AlignedInputs(b *testing.B) {
	benchVariant(b, kernel.VectorizedUnaligned, kernel.Alignment)
}

func BenchmarkVectorizedAligned(b *testing.B) {
	benchVariant(b, kernel.VectorizedAligned, kernel.Alignment)
}

func BenchmarkVectorizedAligned_CacheLine(b *testing.B) {
	benchVariant(b, kernel.VectorizedAligned, 64)
}

func BenchmarkVectorizedAligned_Mapped(b *testing.B) {
	probe, err := buffer.Allocate(1, 0, kernel.Alignment, buffer.WithBacking(buffer.Mapped))
	if err != nil {
		b.Skipf("mapped backing unavailable: %v", err)
	}
	_ = probe.Release()

	benchVariant(b, kernel.VectorizedAligned, kernel.Alignment, buffer.WithBacking(buffer.Mapped))
}
