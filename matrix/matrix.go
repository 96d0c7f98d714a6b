package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense row-major float32 matrix. Element (r, c) lives at
// offset r*cols + c of its buffer.
//
// The zero value is not a usable matrix; create one with New,
// NewFromRows or Clone.
type Matrix struct {
	rows, cols int

	// data has alignPad(rows*cols) elements and starts on an Alignment
	// boundary. Elements past rows*cols are padding and never read.
	data []float32
}

// New returns a zero-filled rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}
	return newUnchecked(rows, cols), nil
}

// NewFromRows builds a matrix from a slice of equally long rows.
func NewFromRows(values [][]float32) (*Matrix, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	cols := len(values[0])
	if err := checkDims(len(values), cols); err != nil {
		return nil, err
	}

	m := newUnchecked(len(values), cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, r, len(row), cols)
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m, nil
}

func checkDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}
	if rows > math.MaxInt/Alignment/cols {
		return fmt.Errorf("%w: %dx%d overflows the address space", ErrInvalidDimension, rows, cols)
	}
	return nil
}

func newUnchecked(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: allocAligned(rows * cols),
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// logical returns the rows*cols meaningful elements, without padding.
func (m *Matrix) logical() []float32 {
	return m.data[:m.rows*m.cols]
}

// Clone returns a deep copy with its own aligned buffer.
func (m *Matrix) Clone() *Matrix {
	c := newUnchecked(m.rows, m.cols)
	copy(c.data, m.logical())
	return c
}

// CopyFrom makes m a deep copy of other, adopting its shape. Copying a
// matrix onto itself is a no-op. m's buffer is reused when its padded size
// already fits other's shape.
func (m *Matrix) CopyFrom(other *Matrix) {
	if m == other {
		return
	}

	n := other.rows * other.cols
	if len(m.data) != alignPad(n) {
		m.data = allocAligned(n)
	}
	m.rows, m.cols = other.rows, other.cols
	copy(m.data, other.logical())
}

func (m *Matrix) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d matrix", ErrIndexOutOfRange, row, col, m.rows, m.cols)
	}
	return row*m.cols + col, nil
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float32, error) {
	i, err := m.index(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[i], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float32) error {
	i, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[i] = v
	return nil
}

// Update replaces the element at (row, col) with fn applied to it.
func (m *Matrix) Update(row, col int, fn func(float32) float32) error {
	i, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[i] = fn(m.data[i])
	return nil
}

// Fill sets every element to v. Padding is left untouched.
func (m *Matrix) Fill(v float32) {
	data := m.logical()
	for i := range data {
		data[i] = v
	}
}

// RawView returns the row-major element slice backing m, cut to
// Rows()*Cols() elements and starting on an Alignment boundary. Writes
// through it bypass bounds checking. It is meant for kernel code; the
// slice aliases m and must not outlive m's current shape.
func (m *Matrix) RawView() []float32 {
	return m.logical()
}

// Values returns the contents as a freshly allocated slice of rows.
func (m *Matrix) Values() [][]float32 {
	out := make([][]float32, m.rows)
	for r := range out {
		out[r] = append([]float32(nil), m.data[r*m.cols:(r+1)*m.cols]...)
	}
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.sameShape(other) {
		return false
	}
	b := other.logical()
	for i, v := range m.logical() {
		if v != b[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether m and other have the same shape and every
// element pair differs by at most eps.
func (m *Matrix) EqualApprox(other *Matrix, eps float32) bool {
	if !m.sameShape(other) {
		return false
	}
	b := other.logical()
	for i, v := range m.logical() {
		d := v - b[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

func (m *Matrix) sameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// String formats m as rows of space-separated values, e.g. "[[1 2] [3 4]]".
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, m.data[r*m.cols:(r+1)*m.cols])
	}
	sb.WriteByte(']')
	return sb.String()
}
