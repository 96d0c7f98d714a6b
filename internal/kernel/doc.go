// Package kernel is the arithmetic engine behind matrix operations.
//
// It exposes stateless functions over raw float32 buffers:
//
//   - VectorAdd: a[i] += b[i]
//   - VectorSubtract: a[i] -= b[i]
//   - BlockedMultiply: result = a × b, tiled for cache reuse
//
// The kernels never check shapes; the matrix package validates operands and
// hands in slices cut to the logical element count. A length mismatch is a
// programmer error and panics.
//
// # Backends
//
// Implementations live in arch/ and register themselves with the registry
// package. The best backend for the running CPU is picked once, on first
// use:
//
//   - avx2 (amd64): 8 float32 lanes
//   - neon (arm64): 4 lanes
//   - sse2 (amd64): 4 lanes
//   - generic: scalar, always available
//
// Building with the purego tag, or setting ALGOMATRIX_FORCE_GENERIC=1,
// restricts dispatch to the generic backend. Every backend produces
// bit-identical results; lane width only changes speed.
package kernel
