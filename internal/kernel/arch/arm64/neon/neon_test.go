//go:build arm64 && !purego

package neon

import (
	"testing"

	"github.com/cwbudde/algo-matrix/internal/kernel/arch/generic"
)

func fill(n int, seed float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = seed*float32(i%13) - float32(i%5)*0.37
	}
	return out
}

func TestVectorOpsMatchGeneric(t *testing.T) {
	for _, n := range []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2, 1027} {
		a := fill(n, 0.5)
		b := fill(n, -1.25)

		got := append([]float32(nil), a...)
		want := append([]float32(nil), a...)
		VectorAdd(got, b)
		generic.VectorAdd(want, b)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d add[%d] = %v, want %v", n, i, got[i], want[i])
			}
		}

		got = append(got[:0], a...)
		want = append(want[:0], a...)
		VectorSubtract(got, b)
		generic.VectorSubtract(want, b)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d sub[%d] = %v, want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestBlockedMultiplyMatchesGeneric(t *testing.T) {
	shapes := []struct{ m, n, k, block int }{
		{1, 1, 1, 32},
		{2, 2, 2, 32},
		{3, lanes + 1, 5, 2},
		{33, 65, 31, 32},
		{70, 45, 100, 16},
	}

	for _, s := range shapes {
		a := fill(s.m*s.k, 0.75)
		b := fill(s.k*s.n, -0.5)

		got := make([]float32, s.m*s.n)
		want := make([]float32, s.m*s.n)
		BlockedMultiply(got, a, b, s.m, s.n, s.k, s.block)
		generic.BlockedMultiply(want, a, b, s.m, s.n, s.k, s.block)

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%+v: result[%d] = %v, want %v", s, i, got[i], want[i])
			}
		}
	}
}
