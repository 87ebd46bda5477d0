// SPDX-License-Identifier: MIT

package matrix

import "math"

// EqualApprox reports whether a and b have the same shape and every element's
// real and imaginary parts differ by at most eps (absolute tolerance).
// Nil or mismatched inputs are never equal.
// Complexity: O(r*c), short-circuits on the first violation.
func EqualApprox(a, b *Dense, eps float64) bool {
	if a == nil || b == nil || ValidateSameShape(a, b) != nil {
		return false
	}
	for i, av := range a.data {
		bv := b.data[i]
		if math.Abs(real(av)-real(bv)) > eps || math.Abs(imag(av)-imag(bv)) > eps {
			return false
		}
	}

	return true
}

// MaxAbsDiff returns the largest per-component absolute difference between
// a and b, for diagnostics when EqualApprox fails.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}

	var worst float64
	for i, av := range a.data {
		bv := b.data[i]
		worst = max(worst, math.Abs(real(av)-real(bv)), math.Abs(imag(av)-imag(bv)))
	}

	return worst, nil
}
