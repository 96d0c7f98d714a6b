// Package reference provides slow, obviously correct matrix products used to
// check the blocked kernels.
//
// Multiply accumulates in float64 through algo-vecmath, giving a yardstick
// that is more accurate than any float32 kernel. Naive is the textbook
// float32 triple loop the blocked kernel must agree with.
package reference

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Multiply returns a × b in float64 for row-major a (m×k) and b (k×n).
// Each output row is built as a sum of scaled rows of b.
func Multiply(a, b []float32, m, n, k int) []float64 {
	b64 := make([]float64, k*n)
	for i := range b64 {
		b64[i] = float64(b[i])
	}

	out := make([]float64, m*n)
	temp := make([]float64, n)

	for i := 0; i < m; i++ {
		row := out[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			// temp = b[p, :] * a[i, p]
			vecmath.ScaleBlock(temp, b64[p*n:(p+1)*n], float64(a[i*k+p]))
			vecmath.AddBlockInPlace(row, temp)
		}
	}

	return out
}

// Naive returns a × b with a plain float32 i-j-p triple loop.
func Naive(a, b []float32, m, n, k int) []float32 {
	out := make([]float32, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			out[i*n+j] = sum
		}
	}
	return out
}

// MaxAbsDiff returns max |got[i] - want[i]|.
func MaxAbsDiff(got []float32, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("reference: length mismatch: %d vs %d", len(got), len(want))
	}
	maxDiff := 0.0
	for i := range got {
		if d := math.Abs(float64(got[i]) - want[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxAbs returns max |x[i]|, used to turn an absolute error into a
// relative one.
func MaxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
