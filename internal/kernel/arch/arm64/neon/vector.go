//go:build arm64 && !purego

package neon

const lanes = 4

// VectorAdd performs a[i] += b[i] four floats (one Q register) at a time,
// then finishes the tail element by element. Panics if lengths differ.
func VectorAdd(a, b []float32) {
	if len(a) != len(b) {
		panic("kernel: slice length mismatch")
	}

	n := len(a)
	i := 0
	for ; i+lanes <= n; i += lanes {
		va := a[i : i+lanes : i+lanes]
		vb := b[i : i+lanes : i+lanes]
		va[0] += vb[0]
		va[1] += vb[1]
		va[2] += vb[2]
		va[3] += vb[3]
	}

	for ; i < n; i++ {
		a[i] += b[i]
	}
}

// VectorSubtract performs a[i] -= b[i] four floats at a time.
// Panics if lengths differ.
func VectorSubtract(a, b []float32) {
	if len(a) != len(b) {
		panic("kernel: slice length mismatch")
	}

	n := len(a)
	i := 0
	for ; i+lanes <= n; i += lanes {
		va := a[i : i+lanes : i+lanes]
		vb := b[i : i+lanes : i+lanes]
		va[0] -= vb[0]
		va[1] -= vb[1]
		va[2] -= vb[2]
		va[3] -= vb[3]
	}

	for ; i < n; i++ {
		a[i] -= b[i]
	}
}
