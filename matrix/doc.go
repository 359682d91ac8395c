// Package matrix provides a small dense float64 matrix library.
//
// The package offers:
//
//   - Dense, a row-major matrix owning a flat []float64 buffer
//     (element (i, j) lives at offset i*cols + j), plus the Matrix interface
//     every kernel accepts.
//   - Constructors: NewDense / NewZeros, NewFilled, NewFromRows, NewIdentity.
//   - Bounds-checked access (At, Set) that returns ErrIndexOutOfBounds instead of panicking.
//   - Exact structural equality (Equal) and tolerance comparison (AllClose).
//   - Arithmetic: Add, Sub, Hadamard, Mul, MulInPlace, Scale, ScaleLeft, Transpose.
//   - Pow, exponentiation by squaring in O(log e) products.
//   - Render, an aligned text form ending with "Shape: <rows>x<cols>".
//
// Shape violations are recoverable errors matched with errors.Is against the
// sentinels in errors.go. Raising a non-square matrix to a power, or using a
// negative exponent, is a programmer error and panics.
//
// Matrices carry no internal locks; share one across goroutines only when no
// goroutine mutates it.
package matrix
