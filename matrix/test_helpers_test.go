// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows; the shape is taken from the literal.
// An empty literal yields 0×0.
func MustRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := matrix.NewFromRows(len(rows), cols, rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// RandomDense fills an r×c matrix with small integers in [-9, 9] from a fixed seed.
// Integer-valued entries keep products exact, so exact Equal is safe in property tests.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return float64(rng.Intn(19) - 9)
	}))

	return m
}

// RequireEqual asserts structural equality and prints both renderings on failure.
func RequireEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "want:\n%s\ngot:\n%s", matrix.Render(want), matrix.Render(got))
}
