package generic

// VectorAdd performs a[i] += b[i] one element at a time.
// Panics if lengths differ.
func VectorAdd(a, b []float32) {
	if len(a) != len(b) {
		panic("kernel: slice length mismatch")
	}
	for i := range a {
		a[i] += b[i]
	}
}

// VectorSubtract performs a[i] -= b[i] one element at a time.
// Panics if lengths differ.
func VectorSubtract(a, b []float32) {
	if len(a) != len(b) {
		panic("kernel: slice length mismatch")
	}
	for i := range a {
		a[i] -= b[i]
	}
}
