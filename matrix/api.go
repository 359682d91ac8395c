// SPDX-License-Identifier: MIT
// Public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// NewIdentity(0) is the legal empty 0×0 matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	setDiagonal(I)

	return I, nil
}

// newIdentity is NewIdentity for callers that already hold a valid size.
func newIdentity(n int, finiteOnly bool) *Dense {
	I := newDense(n, n, finiteOnly)
	setDiagonal(I)

	return I
}

// setDiagonal writes 1.0 at offsets i*n + i of a square Dense.
func setDiagonal(I *Dense) {
	for i := 0; i < I.r; i++ { // fixed i order guarantees reproducibility
		I.data[i*I.c+i] = 1.0
	}
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Returns nil for a nil input.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with m's shape.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity with m's size; m must be square.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// ---------- Algebra facades ----------

// Sum returns a + b (see Add).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff returns a - b (see Sub).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product returns a × b (see Mul).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// HadamardProd returns a ⊙ b (see Hadamard).
func HadamardProd(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T returns mᵀ (see Transpose).
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy returns alpha·m (see Scale).
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Power returns m^exp (see Pow, including its panics).
func Power(m Matrix, exp int, opts ...Option) (*Dense, error) { return Pow(m, exp, opts...) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrNaNInf (non-finite tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
