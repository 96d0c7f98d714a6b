package kernel

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-matrix/internal/testutil"
)

var benchSizes = []int{16, 64, 256, 1024, 4096, 65536}

func BenchmarkVectorAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			x := testutil.RandomData(1, n, 1)
			y := testutil.RandomData(2, n, 1)

			b.SetBytes(int64(n * 4))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				VectorAdd(x, y)
			}
		})
	}
}

func BenchmarkBlockedMultiply(b *testing.B) {
	for _, n := range []int{32, 64, 128, 256} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			x := testutil.RandomData(1, n*n, 1)
			y := testutil.RandomData(2, n*n, 1)
			out := make([]float32, n*n)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				BlockedMultiply(out, x, y, n, n, n)
			}
		})
	}
}
