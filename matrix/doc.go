// Package matrix provides a dense, row-major float32 matrix backed by a
// 32-byte aligned buffer, with SIMD-dispatched addition, subtraction and
// cache-blocked multiplication.
//
// # Construction
//
//	a, err := matrix.New(2, 3) // zero-filled 2×3
//	b, err := matrix.NewFromRows([][]float32{{1, 2}, {3, 4}})
//
// Dimensions must be positive; anything else returns ErrInvalidDimension.
//
// # Ownership
//
// A Matrix owns its buffer exclusively. Clone and CopyFrom deep-copy, and
// every binary operator allocates a fresh result, so no two matrices ever
// share storage. Mutating a clone never affects its source.
//
// # Element access
//
// At, Set and Update are the bounds-checked element accessors and return
// ErrIndexOutOfRange for indices outside the matrix. RawView exposes the
// underlying slice for kernel code and is not meant for ordinary callers.
//
// # Arithmetic
//
//   - Add, Sub: elementwise, new result; ErrShapeMismatch on differing shapes
//   - AddInPlace, SubInPlace: elementwise into the receiver
//   - Mul: matrix product, new result; ErrDimensionMismatch when a.Cols() != b.Rows()
//   - MulInPlace: product replaces the receiver, whose column count changes
//
// Operands are validated before anything is written or allocated, so a
// failed operation leaves every matrix untouched.
//
// # Concurrency
//
// Matrices are not synchronized. Distinct matrices can be used from
// different goroutines; a single matrix must not be mutated concurrently.
package matrix
