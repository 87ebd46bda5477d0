// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernel and accessor tests.
//   - Keep every value integer-valued so cross-kernel products compare exactly.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/labbench/matrix"
	"github.com/stretchr/testify/require"
)

// exactEps is the tolerance for integer-valued products; they are exact in float64.
const exactEps = 1e-9

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(tb testing.TB, r, c int, vals []complex128) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// MustGenerate returns a seeded random r×c matrix or fails the test.
func MustGenerate(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Generate(r, c, matrix.WithSeed(seed))
	require.NoError(tb, err)

	return m
}

// referenceMul is an obviously-correct i-j-k product built on At/Set only.
// It is the oracle every kernel is checked against.
func referenceMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	out := MustDense(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum complex128
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(tb, err)
				bv, err := b.At(k, j)
				require.NoError(tb, err)
				sum += av * bv
			}
			require.NoError(tb, out.Set(i, j, sum))
		}
	}

	return out
}

// requireEqualMatrix fails unless got and want agree within exactEps,
// reporting the worst component difference.
func requireEqualMatrix(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	if matrix.EqualApprox(want, got, exactEps) {
		return
	}
	diff, err := matrix.MaxAbsDiff(want, got)
	require.NoError(tb, err)
	require.Failf(tb, "matrices differ", "max |Δ| = %g", diff)
}
