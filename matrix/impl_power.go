// SPDX-License-Identifier: MIT

// Package matrix - integer power by repeated squaring.
//
// Purpose:
//   - Raise a square matrix to a non-negative integer power in O(log e) products.
//
// Contract:
//   - Non-square input and negative exponents are programmer errors: Pow panics
//     with an error wrapping ErrNonSquare / ErrNegativeExponent.
//   - exp == 0 returns the identity of the same size without any product.
//   - Every product goes through Mul, so shape semantics compose with Mul.

package matrix

import (
	"context"
	"fmt"
	"log/slog"
)

// Step labels emitted to the optional logger.
const (
	powStepSquare  = "square"
	powStepCombine = "combine"
)

// Pow returns m raised to the power exp.
// MAIN DESCRIPTION:
//   - Exponentiation by squaring:
//     pow(m, 0) = I,
//     pow(m, e) = pow(m·m, e/2)     for even e,
//     pow(m, e) = m · pow(m·m, e/2) for odd e.
//
// Implementation:
//   - Stage 1: ValidateNotNil; a nil matrix has no shape and is reported as an error.
//   - Stage 2: panic on non-square m or exp < 0.
//   - Stage 3: exp == 0 → NewIdentity(n).
//   - Stage 4: materialize m as *Dense (no copy when it already is one) and recurse.
//
// Behavior highlights:
//   - The squaring m·m is formed at every level, including the last one where
//     the remaining exponent becomes 0; for e>0 the product count is
//     bits(e) + popcount(e).
//   - With WithLogger, one Debug record is written per product.
//
// Errors:
//   - ErrNilMatrix (recoverable).
//   - Element read errors from a non-Dense m (recoverable).
//
// Panics:
//   - error wrapping ErrNonSquare when m.Rows() != m.Cols().
//   - error wrapping ErrNegativeExponent when exp < 0.
//
// Complexity:
//   - Time O(n³·log e), Space O(n²·log e) for the recursion's live products.
func Pow(m Matrix, exp int, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if err := ValidateSquare(m); err != nil {
		panic(matrixErrorf(opPow, err))
	}
	if exp < 0 {
		panic(matrixErrorf(opPow, fmt.Errorf("exponent %d: %w", exp, ErrNegativeExponent)))
	}

	n := m.Rows()
	if exp == 0 {
		return newIdentity(n, DefaultFiniteOnly), nil
	}

	base, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	o := gatherOptions(opts...)

	return powBySquaring(base, exp, o.logger)
}

// Pow is the method form of the package-level Pow.
// A *Dense operand cannot produce a recoverable error, so the result is
// returned directly; the same panics apply.
func (m *Dense) Pow(exp int, opts ...Option) *Dense {
	res, err := Pow(m, exp, opts...)
	if err != nil {
		panic(err)
	}

	return res
}

// powBySquaring is the recursive core of Pow; callers guarantee base is square.
func powBySquaring(base *Dense, exp int, lg *slog.Logger) (*Dense, error) {
	if exp == 0 {
		return newIdentity(base.r, DefaultFiniteOnly), nil
	}

	logPowStep(lg, powStepSquare, exp, base.r)
	sq, err := Mul(base, base)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	half, err := powBySquaring(sq, exp/2, lg)
	if err != nil {
		return nil, err
	}
	if exp%2 == 0 {
		return half, nil
	}

	logPowStep(lg, powStepCombine, exp, base.r)
	res, err := Mul(base, half)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	return res, nil
}

// logPowStep writes a single Debug record; a nil logger is silent.
func logPowStep(lg *slog.Logger, step string, remaining, size int) {
	if lg == nil {
		return
	}
	lg.LogAttrs(context.Background(), slog.LevelDebug, "matrix pow step",
		slog.String("step", step),
		slog.Int("remaining", remaining),
		slog.Int("size", size),
	)
}

// asDense returns m itself when it is a *Dense, else a materialized copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols, DefaultFiniteOnly)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
