// SPDX-License-Identifier: MIT

// Package matrix provides a dense complex128 matrix and three interchangeable
// multiplication kernels used by the labbench GEMM benchmark.
//
// What:
//
//   - Dense: row-major complex buffer with bounds-checked At/Set and a raw Data
//     view for hot loops (offset = i*cols + j).
//   - MulNaive: textbook i-k-j triple loop.
//   - MulBLAS: vendor zgemm through gonum's cblas128 (alpha=1, beta=0).
//   - MulBlocked: transpose B once, then tile the i/j/k loops so each block of
//     A and Bᵀ stays resident in cache.
//   - EqualApprox / MaxAbsDiff: component-wise agreement checks between kernels.
//
// Complexity:
//
//   - All kernels: O(n³) time. MulBlocked needs an extra O(n²) scratch buffer
//     for Bᵀ; MulNaive and MulBLAS need none.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive side.
//   - ErrOutOfRange: At/Set outside the matrix.
//   - ErrDimensionMismatch: operands (or the destination) are not conformable.
//   - ErrNilMatrix: a nil *Dense was passed.
//   - ErrInvalidBlockSize: tile size must be positive.
//   - ErrAliasedOperands: the destination is also an operand.
//   - ErrUnknownKernel: SelectKernels got a name outside naive/blas/blocked.
//
// Flops: a complex multiply-add costs 8 real flops, so an n×n product is 8n³.
package matrix
