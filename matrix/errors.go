// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Recoverable failures MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors (see Pow).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with an operation tag via
// matrixErrorf ("Mul: ...: matrix: shape mismatch"); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrShapeMismatch indicates incompatible shapes: NewFromRows with ragged or
	// miscounted rows, Add/Sub/Hadamard on different shapes, or Mul where
	// a.Cols != b.Rows. Wrapping messages report both shapes, left operand first.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfBounds indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Pow panics with an error wrapping this sentinel.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeExponent signals a negative exponent passed to Pow.
	// No inverse is implemented; Pow panics with an error wrapping this sentinel.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix whose
	// numeric policy requires finite values (see WithFiniteOnly).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// BACKWARD-COMPATIBILITY ALIASES.
// They are semantically identical sentinels, so errors.Is matches either name.

// ErrDimensionMismatch is the historical name of ErrShapeMismatch.
var ErrDimensionMismatch = ErrShapeMismatch // Deprecated: use ErrShapeMismatch.

// ErrOutOfRange is the historical name of ErrIndexOutOfBounds.
var ErrOutOfRange = ErrIndexOutOfBounds // Deprecated: use ErrIndexOutOfBounds.
