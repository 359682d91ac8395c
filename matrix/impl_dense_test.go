// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFilled(-2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroSized verifies 0×N, N×0 and 0×0 are legal and hold no elements.
func TestNewDenseZeroSized(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m, err := matrix.NewFilled(shape[0], shape[1], 7)
		require.NoError(t, err)
		r, c := m.Shape()
		require.Equal(t, shape[0], r)
		require.Equal(t, shape[1], c)

		_, err = m.At(0, 0)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	}
}

// TestNewFilled checks every element equals the fill value.
func TestNewFilled(t *testing.T) {
	const r, c, v = 3, 4, 2.5
	m, err := matrix.NewFilled(r, c, v)
	require.NoError(t, err)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

// TestNewFromRows covers the success path and both shape-mismatch conditions.
func TestNewFromRows(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		m, err := matrix.NewFromRows(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
		v, err := m.At(1, 0)
		require.NoError(t, err)
		require.Equal(t, 4.0, v)
	})

	t.Run("row count", func(t *testing.T) {
		_, err := matrix.NewFromRows(3, 2, [][]float64{{1, 2}, {3, 4}})
		require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		require.Contains(t, err.Error(), "want 3 rows, got 2")
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := matrix.NewFromRows(2, 2, [][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		require.Contains(t, err.Error(), "row 1: want 2 columns, got 1")
	})

	t.Run("input is copied", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m, err := matrix.NewFromRows(2, 2, src)
		require.NoError(t, err)
		src[0][0] = 99

		v, err := m.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)
	})
}

// TestNewIdentity checks diagonal ones and off-diagonal zeros.
func TestNewIdentity(t *testing.T) {
	const n = 4
	I := MustIdentity(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := I.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}

	_, err := matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds and
// report both the shape and the offending index.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.EqualError(t, err, "Dense.Set(2,0): shape is (2, 2) but index is (2, 0): matrix: index out of bounds")

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // alias keeps matching
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetNonFinite covers the default IEEE policy and the WithFiniteOnly guard.
func TestSetNonFinite(t *testing.T) {
	plain := MustDense(t, 1, 1)
	require.NoError(t, plain.Set(0, 0, math.Inf(1)))

	strict, err := matrix.NewDense(1, 1, matrix.WithFiniteOnly())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Apply(func(_, _ int, _ float64) float64 { return math.Inf(-1) }), matrix.ErrNaNInf)

	_, err = matrix.NewFromRows(1, 2, [][]float64{{1, math.NaN()}}, matrix.WithFiniteOnly())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewFilled(2, 2, math.Inf(1), matrix.WithFiniteOnly())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, []float64{1, 0}, []float64{0, 2})
	clone := m.Clone()

	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestClonePreservesPolicy checks the numeric policy travels with Clone.
func TestClonePreservesPolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithFiniteOnly())
	require.NoError(t, err)
	clone, ok := m.Clone().(*matrix.Dense)
	require.True(t, ok)
	require.True(t, matrix.FiniteOnly_TestOnly(clone))
}

// TestRowCopy checks Row returns an independent copy and bounds-checks.
func TestRowCopy(t *testing.T) {
	m := MustRows(t, []float64{1, 2}, []float64{3, 4})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 42
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDoOrderAndEarlyStop verifies row-major traversal and early exit.
func TestDoOrderAndEarlyStop(t *testing.T) {
	m := MustRows(t, []float64{1, 2}, []float64{3, 4})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}
