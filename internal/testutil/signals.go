package testutil

import "math/rand"

// RandomData returns n values uniformly drawn from [-amplitude, amplitude)
// with a fixed seed, so failures reproduce.
func RandomData(seed int64, n int, amplitude float32) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, step, 2*step, ... of length n.
func Ramp(n int, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) * step
	}
	return out
}

// Const returns n copies of value.
func Const(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}
