// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers and a read-only view of the resolved Options to
//     matrix_test ONLY. The file ends in _test.go, so it never reaches a
//     production build.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

import "log/slog"

// Panic message exports to avoid "magic strings" in tests.
const PanicRenderToleranceInvalid_TestOnly = panicRenderToleranceInvalid

// DigitCount_TestOnly forwards to the private digitCount helper.
func DigitCount_TestOnly(v, tol float64) int { return digitCount(v, tol) }

// OptionsSnapshot is a stable copy of the resolved Options.
type OptionsSnapshot struct {
	FiniteOnly bool
	RenderTol  float64
	Logger     *slog.Logger
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{FiniteOnly: o.finiteOnly, RenderTol: o.renderTol, Logger: o.logger}
}

// FiniteOnly_TestOnly reports the numeric policy captured by m.
func FiniteOnly_TestOnly(m *Dense) bool { return m.finiteOnly }
