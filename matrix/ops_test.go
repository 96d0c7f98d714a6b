package matrix_test

import (
	"testing"

	"github.com/cwbudde/algo-matrix/internal/reference"
	"github.com/cwbudde/algo-matrix/internal/testutil"
	"github.com/cwbudde/algo-matrix/matrix"
	"github.com/stretchr/testify/require"
)

func randomMatrix(t *testing.T, seed int64, rows, cols int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows, cols)
	require.NoError(t, err)
	copy(m.RawView(), testutil.RandomData(seed, rows*cols, 1))
	return m
}

func TestAddSubConcrete(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float32{{5, 6}, {7, 8}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{6, 8}, {10, 12}}, sum.Values())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{4, 4}, {4, 4}}, diff.Values())

	// Operands untouched.
	require.Equal(t, [][]float32{{1, 2}, {3, 4}}, a.Values())
	require.Equal(t, [][]float32{{5, 6}, {7, 8}}, b.Values())
}

func TestAddElementwiseAndCommutative(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 3}, {5, 13}, {17, 31}} {
		a := randomMatrix(t, 1, shape[0], shape[1])
		b := randomMatrix(t, 2, shape[0], shape[1])

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)
		require.True(t, ab.EqualApprox(ba, 1e-6))

		for r := 0; r < shape[0]; r++ {
			for c := 0; c < shape[1]; c++ {
				x, _ := a.At(r, c)
				y, _ := b.At(r, c)
				s, _ := ab.At(r, c)
				require.Equal(t, x+y, s)
			}
		}
	}
}

func TestShapeMismatch(t *testing.T) {
	a, err := matrix.New(2, 3)
	require.NoError(t, err)
	a.Fill(1)
	b, err := matrix.New(3, 2)
	require.NoError(t, err)

	_, err = a.Add(b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	res, err := a.AddInPlace(b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Nil(t, res)
	_, err = a.SubInPlace(b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	require.Equal(t, [][]float32{{1, 1, 1}, {1, 1, 1}}, a.Values())
}

func TestInPlaceChaining(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float32{{1, 1}, {1, 1}})

	got, err := a.AddInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, got)

	_, err = got.AddInPlace(b)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{3, 4}, {5, 6}}, a.Values())

	got, err = a.SubInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, got)
	require.Equal(t, [][]float32{{2, 3}, {4, 5}}, a.Values())
	require.Equal(t, [][]float32{{1, 1}, {1, 1}}, b.Values())
}

func TestMulConcrete(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float32{{5, 6}, {7, 8}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{19, 22}, {43, 50}}, p.Values())
	require.Equal(t, [][]float32{{1, 2}, {3, 4}}, a.Values())
	require.Equal(t, [][]float32{{5, 6}, {7, 8}}, b.Values())
}

func TestMulRectangular(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2, 3}})
	b := mustFromRows(t, [][]float32{{1, 0}, {0, 1}, {1, 1}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.Equal(t, [][]float32{{4, 5}}, p.Values())
}

func TestMulDimensionMismatch(t *testing.T) {
	a, err := matrix.New(2, 3)
	require.NoError(t, err)
	b, err := matrix.New(2, 3)
	require.NoError(t, err)

	_, err = a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = a.MulInPlace(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, 3, a.Cols(), "failed MulInPlace must not reshape")
}

func TestMulLargeMatchesReference(t *testing.T) {
	// None of the dimensions is a multiple of the 32-element tile.
	const m, n, k = 75, 41, 99
	a := randomMatrix(t, 3, m, k)
	b := randomMatrix(t, 4, k, n)

	p, err := a.Mul(b)
	require.NoError(t, err)

	naive := reference.Naive(a.RawView(), b.RawView(), m, n, k)
	testutil.RequireSliceNearlyEqual(t, p.RawView(), naive, 1e-3)

	want := reference.Multiply(a.RawView(), b.RawView(), m, n, k)
	diff, err := reference.MaxAbsDiff(p.RawView(), want)
	require.NoError(t, err)
	require.Less(t, diff, 1e-3)
}

func TestMulInPlace(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float32{{1, 0, 2}, {0, 1, 3}})

	require.NoError(t, a.MulInPlace(b))
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Cols())
	require.Equal(t, [][]float32{{1, 2, 8}, {3, 4, 18}}, a.Values())
	require.Equal(t, [][]float32{{1, 0, 2}, {0, 1, 3}}, b.Values())
}

func TestMulInPlaceSelf(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	require.NoError(t, a.MulInPlace(a))
	require.Equal(t, [][]float32{{7, 10}, {15, 22}}, a.Values())
}

func TestResultsAreIndependent(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float32{{1, 1}, {1, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.NoError(t, sum.Set(0, 0, 100))

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), v)
	v, err = b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), v)
}
