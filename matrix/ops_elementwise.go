// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison kernels: exact structural equality and
//     tolerance-based closeness.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No allocations; early exit on the first differing element.

package matrix

import "math"

// Equal reports whether a and b have identical shapes and every pair of
// corresponding elements compares equal under ordinary float64 ==.
//
// Behavior highlights:
//   - No epsilon tolerance; use AllClose for approximate comparison.
//   - Differing shapes are never equal, including 0×2 vs 2×0 and 0×0 vs 0×3.
//   - NaN is never equal to anything, so a matrix holding NaN is not equal to itself.
//   - Two nil matrices are equal; nil and non-nil are not.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var errA, errB error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
