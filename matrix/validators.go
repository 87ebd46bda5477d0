// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulInto is the composite guard of every kernel:
// NotNil(a,b,c) → a.Cols == b.Rows → c is a.Rows×b.Cols → c aliases neither.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOperands.
func ValidateMulInto(a, b, c *Dense) error {
	for _, m := range [...]*Dense{a, b, c} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateMulInto", err)
		}
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulInto: inner", ErrDimensionMismatch)
	}
	if c.r != a.r || c.c != b.c {
		return validatorErrorf("ValidateMulInto: destination", ErrDimensionMismatch)
	}
	// Kernels overwrite C while still reading A and B.
	if c == a || c == b {
		return validatorErrorf("ValidateMulInto", ErrAliasedOperands)
	}

	return nil
}
