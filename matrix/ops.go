package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-matrix/internal/kernel"
)

func (m *Matrix) checkSameShape(other *Matrix) error {
	if !m.sameShape(other) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	return nil
}

func (m *Matrix) checkMulDims(other *Matrix) error {
	if m.cols != other.rows {
		return fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	return nil
}

// Add returns m + other as a new matrix.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, err
	}
	out := m.Clone()
	kernel.VectorAdd(out.logical(), other.logical())
	return out, nil
}

// Sub returns m - other as a new matrix.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, err
	}
	out := m.Clone()
	kernel.VectorSubtract(out.logical(), other.logical())
	return out, nil
}

// AddInPlace adds other into m and returns m.
func (m *Matrix) AddInPlace(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, err
	}
	kernel.VectorAdd(m.logical(), other.logical())
	return m, nil
}

// SubInPlace subtracts other from m and returns m.
func (m *Matrix) SubInPlace(other *Matrix) (*Matrix, error) {
	if err := m.checkSameShape(other); err != nil {
		return nil, err
	}
	kernel.VectorSubtract(m.logical(), other.logical())
	return m, nil
}

// Mul returns the matrix product m × other, of shape Rows()×other.Cols().
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := m.checkMulDims(other); err != nil {
		return nil, err
	}
	out := newUnchecked(m.rows, other.cols)
	kernel.BlockedMultiply(out.data, m.logical(), other.logical(), m.rows, other.cols, m.cols)
	return out, nil
}

// MulInPlace replaces m with m × other. The product is computed into a new
// buffer which m then adopts, so m's column count becomes other.Cols().
// other is never modified, and m.MulInPlace(m) is valid for square m.
func (m *Matrix) MulInPlace(other *Matrix) error {
	if err := m.checkMulDims(other); err != nil {
		return err
	}
	buf := allocAligned(m.rows * other.cols)
	kernel.BlockedMultiply(buf, m.logical(), other.logical(), m.rows, other.cols, m.cols)
	m.data = buf
	m.cols = other.cols
	return nil
}
