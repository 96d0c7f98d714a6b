package matrix

import "errors"

// Sentinel errors. Returned errors wrap these with the offending shape or
// index; match them with errors.Is.
var (
	// ErrInvalidDimension is returned when a matrix is requested with a
	// row or column count that is not positive.
	ErrInvalidDimension = errors.New("matrix: dimensions must be positive")

	// ErrIndexOutOfRange is returned by the element accessors for a row or
	// column outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch is returned by elementwise operations on matrices of
	// different shapes.
	ErrShapeMismatch = errors.New("matrix: shapes must match")

	// ErrDimensionMismatch is returned by multiplication when the left
	// operand's column count differs from the right operand's row count.
	ErrDimensionMismatch = errors.New("matrix: inner dimensions must match")
)
