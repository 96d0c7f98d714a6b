package matrix_test

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-matrix/internal/testutil"
	"github.com/cwbudde/algo-matrix/matrix"
)

func benchMatrix(b *testing.B, seed int64, n int) *matrix.Matrix {
	b.Helper()
	m, err := matrix.New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	copy(m.RawView(), testutil.RandomData(seed, n*n, 1))
	return m
}

func BenchmarkAddInPlace(b *testing.B) {
	for _, n := range []int{16, 128, 512} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			x := benchMatrix(b, 1, n)
			y := benchMatrix(b, 2, n)

			b.SetBytes(int64(n * n * 4))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := x.AddInPlace(y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{32, 100, 256} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			x := benchMatrix(b, 1, n)
			y := benchMatrix(b, 2, n)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := x.Mul(y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
