//go:build amd64 && !purego

package avx2

const lanes = 8

// VectorAdd performs a[i] += b[i] in 8-wide steps (one YMM register of
// float32) followed by a scalar remainder loop. Panics if lengths differ.
//
// TODO: replace the unrolled bodies with VADDPS/VSUBPS Go assembly.
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
		va[4] += vb[4]
		va[5] += vb[5]
		va[6] += vb[6]
		va[7] += vb[7]
	}

	for ; i < n; i++ {
		a[i] += b[i]
	}
}

// VectorSubtract performs a[i] -= b[i] in 8-wide steps with a scalar
// remainder loop. Panics if lengths differ.
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
		va[4] -= vb[4]
		va[5] -= vb[5]
		va[6] -= vb[6]
		va[7] -= vb[7]
	}

	for ; i < n; i++ {
		a[i] -= b[i]
	}
}
