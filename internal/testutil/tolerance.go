package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair satisfies |got-want| <= eps*max(1, |want|). The bound is
// absolute for small values and relative for large ones, which fits
// float32 sums whose rounding grows with their magnitude.
//
// The report names the worst element and how many exceeded the bound.
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	bad, worst, worstDiff := 0, -1, 0.0
	for i := range got {
		w := float64(want[i])
		diff := math.Abs(float64(got[i]) - w)
		if diff <= eps*math.Max(1, math.Abs(w)) {
			continue
		}
		bad++
		if diff > worstDiff {
			worst, worstDiff = i, diff
		}
	}
	if bad > 0 {
		t.Fatalf("%d of %d elements outside eps %v; worst at %d: got %v, want %v (diff %v)",
			bad, len(got), eps, worst, got[worst], want[worst], worstDiff)
	}
}

// RequireFinite fails t if data holds any NaN or Inf, naming the first one.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d of %d: non-finite value %v", i, len(data), v)
		}
	}
}
