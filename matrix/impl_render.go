// SPDX-License-Identifier: MIT

// Package matrix - human-readable text rendering.
//
// Layout:
//
//	1000    0    1
//	   0    3    5
//	Shape: 2x3
//
//   - One line per row, each terminated by '\n'.
//   - Every element is left-padded to a common width: the digit count of the
//     integer part of the largest-magnitude element (at least 1).
//   - Elements are separated by a single space and printed in the shortest
//     decimal form that round-trips, never in exponent notation.
//   - A final "Shape: <rows>x<cols>" line without a trailing newline.
//
// The rendering is display-only; there is no parser for it.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
	_fmtShape    = "Shape: "
	_fmtShapeX   = "x"
	_fmtNil      = "<nil>"
)

// Render returns the aligned text form of m using DefaultRenderTolerance.
func Render(m Matrix) string { return RenderWith(m) }

// RenderWith is Render with options (WithRenderTolerance).
//
// Implementation:
//   - Stage 1: first pass computes the common width.
//   - Stage 2: second pass writes padded elements row by row.
//   - Stage 3: append the shape line.
//
// Behavior highlights:
//   - Deterministic for a given content.
//   - Non-Dense inputs are read through At; a read failure is rendered as the
//     error text.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the output.
func RenderWith(m Matrix, opts ...Option) string {
	if ValidateNotNil(m) != nil {
		return _fmtNil
	}
	d, err := asDense(m)
	if err != nil {
		return err.Error()
	}
	tol := gatherOptions(opts...).renderTol

	width := 1
	for _, v := range d.data {
		if n := digitCount(v, tol); n > width {
			width = n
		}
	}

	var b strings.Builder
	var i, j, base int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			if pad := width - digitCount(v, tol); pad > 0 {
				b.WriteString(strings.Repeat(_fmtSep, pad))
			}
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			if j+1 < d.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
	b.WriteString(_fmtShape)
	b.WriteString(strconv.Itoa(d.r))
	b.WriteString(_fmtShapeX)
	b.WriteString(strconv.Itoa(d.c))

	return b.String()
}

// digitCount returns the number of decimal digits of |v|'s integer part,
// with a floor of 1. Magnitudes below tol and non-finite values count as 1.
func digitCount(v, tol float64) int {
	a := math.Abs(v)
	if a == 0 || a < tol || !isFinite(a) {
		return 1
	}
	n := int(math.Floor(math.Log10(a)+tol)) + 1
	if n < 1 {
		return 1
	}

	return n
}
