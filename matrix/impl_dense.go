// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own the storage exclusively: Clone deep-copies, no two Dense share a buffer.
//   - Enforce an optional numeric policy (NaN/Inf rejection) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/NewFilled/NewFromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal, negative is not.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - finiteOnly enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c       int       // row and column counts (>=0)
	data       []float64 // contiguous row-major storage (len == r*c)
	finiteOnly bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and option-driven numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: set numeric policy from options.
//
// Behavior highlights:
//   - 0×N and N×0 are legal and hold zero elements.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.finiteOnly), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense(rows, cols int, finiteOnly bool) *Dense {
	return &Dense{
		r:          rows,
		c:          cols,
		data:       make([]float64, rows*cols), // make() zero-fills deterministically
		finiteOnly: finiteOnly,
	}
}

// NewFilled creates a rows×cols matrix with every element set to value.
// Zero-sized matrices are legal.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//   - ErrNaNInf when value is not finite and WithFiniteOnly is in effect.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, value float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.finiteOnly && !isFinite(value) && len(m.data) > 0 {
		return nil, fmt.Errorf("NewFilled(%d,%d): %w", rows, cols, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = value
	}

	return m, nil
}

// NewFromRows builds a rows×cols matrix from a sequence of row slices.
// MAIN DESCRIPTION:
//   - Concatenate data[0], data[1], ... into the flat row-major buffer.
//
// Implementation:
//   - Stage 1: check len(data) == rows.
//   - Stage 2: check every len(data[i]) == cols while copying.
//
// Behavior highlights:
//   - The input slices are copied; later mutation of data does not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//   - ErrShapeMismatch (row count or any row length differs), message reports
//     the expected and actual lengths.
//   - ErrNaNInf (non-finite value under WithFiniteOnly).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows, cols int, data [][]float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows {
		return nil, fmt.Errorf("NewFromRows: want %d rows, got %d: %w", rows, len(data), ErrShapeMismatch)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d: want %d columns, got %d: %w",
				i, cols, len(data[i]), ErrShapeMismatch)
		}
		if m.finiteOnly {
			for j = 0; j < cols; j++ {
				if !isFinite(data[i][j]) {
					return nil, fmt.Errorf("NewFromRows(%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
		copy(m.data[i*cols:(i+1)*cols], data[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// The error reports the shape and the offending index; public methods (At/Set)
// wrap it with the method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("shape is (%d, %d) but index is (%d, %d): %w",
			m.r, m.c, row, col, ErrIndexOutOfBounds)
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Never panics on out-of-range.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check before any access).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrIndexOutOfBounds for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.finiteOnly && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): shape is (%d, %d): %w", ctxRow, i, m.r, m.c, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is Clone with the concrete return type.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, finiteOnly: m.finiteOnly}
}

// Equal reports whether m and other have the same shape and identical elements.
// See the package-level Equal.
func (m *Dense) Equal(other Matrix) bool { return Equal(m, other) }

// String renders the matrix with Render.
func (m *Dense) String() string { return Render(m) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value and the policy is on.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.finiteOnly && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
