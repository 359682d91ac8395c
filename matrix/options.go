// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors, Pow and Render.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The numeric policy (finiteOnly) is captured by a Dense at creation time and
//     is preserved by Clone and by kernels that derive a result from it.
//   - The logger is consulted only by Pow; a nil logger means "silent".
package matrix

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFiniteOnly toggles strict finite-value validation on Set/Apply.
	// Off: plain IEEE-754 semantics, NaN and ±Inf are stored as given.
	DefaultFiniteOnly = false

	// DefaultRenderTolerance is the magnitude below which Render treats an
	// element as zero-width (one digit).
	DefaultRenderTolerance = 1e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRenderToleranceInvalid = "matrix: WithRenderTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	finiteOnly bool         // DefaultFiniteOnly
	renderTol  float64      // DefaultRenderTolerance
	logger     *slog.Logger // nil ⇒ no tracing
}

// ---------- Constructors (WithX) ----------

// WithFiniteOnly makes newly created matrices reject NaN/±Inf on Set and Apply.
//
// Notes:
//   - Propagates only on creation; existing matrices keep their policy.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithAllowNonFinite restores the default IEEE-754 behavior (NaN/±Inf accepted).
func WithAllowNonFinite() Option {
	return func(o *Options) { o.finiteOnly = false }
}

// WithRenderTolerance sets the magnitude below which Render prints an element
// with a one-digit width.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRenderTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicRenderToleranceInvalid)
	}

	return func(o *Options) { o.renderTol = tol }
}

// WithLogger attaches a structured logger. Pow emits one Debug record per
// squaring step, which makes the O(log e) multiplication count observable.
// A nil logger disables tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		finiteOnly: DefaultFiniteOnly,
		renderTol:  DefaultRenderTolerance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
