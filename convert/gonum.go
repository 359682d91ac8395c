// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrEmpty is returned by ToGonum for matrices with zero rows or columns,
// which gonum's mat.Dense cannot represent.
var ErrEmpty = errors.New("convert: gonum cannot hold a zero-sized matrix")

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrEmpty when m has zero rows or zero columns.
//   - element read errors from a non-Dense m.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ToGonum: shape (%d, %d): %w", rows, cols, ErrEmpty)
	}

	data := make([]float64, rows*cols)
	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			data[i*cols+j] = v
			return true
		})

		return mat.NewDense(rows, cols, data), nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToGonum: %w", err)
			}
			data[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new *matrix.Dense.
// Options are forwarded to matrix.NewDense (e.g. matrix.WithFiniteOnly).
func FromGonum(g mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	rows, cols := g.Dims()
	out, err := matrix.NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}
