// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels and accessors return these sentinels (possibly wrapped with a call
// site tag); tests match them with errors.Is. User-triggered conditions never
// panic.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary only.

var (
	// ErrInvalidDimensions indicates non-positive dimensions or a shape above MaxElements.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. a.Cols != b.Rows
	// or a destination that is not a.Rows×b.Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidBlockSize indicates a non-positive tile size for MulBlocked.
	ErrInvalidBlockSize = errors.New("matrix: block size must be > 0")

	// ErrAliasedOperands indicates that the destination of a product is also one of its operands.
	ErrAliasedOperands = errors.New("matrix: destination aliases an operand")

	// ErrUnknownKernel indicates a kernel name not present in the registry.
	ErrUnknownKernel = errors.New("matrix: unknown kernel")
)
