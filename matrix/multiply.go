// SPDX-License-Identifier: MIT

// Package matrix - multiplication kernels.
//
// All kernels compute C = A·B, overwriting C. They share one validator
// (ValidateMulInto) and never mutate A or B. Loop orders are fixed so the
// same operands always produce bit-identical results for a given kernel.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// ---------- operation tags for error wrapping ----------

const (
	opMulNaive   = "MulNaive"
	opMulBLAS    = "MulBLAS"
	opMulBlocked = "MulBlocked"
	opTranspose  = "Transpose"
)

// MulNaive computes C = A·B with the textbook triple loop in i-k-j order.
//
// Implementation:
//   - Stage 1: validate shapes, zero C.
//   - Stage 2: for each row i of A and each k, broadcast a[i,k] across row k
//     of B and accumulate into row i of C. The innermost loop walks B and C
//     contiguously, which is the only locality this kernel gets.
//
// Complexity:
//   - Time O(r*n*c), Space O(1) beyond C.
func MulNaive(a, b, c *Dense) error {
	if err := ValidateMulInto(a, b, c); err != nil {
		return matrixErrorf(opMulNaive, err)
	}
	c.Zero()

	n, p := a.c, b.c
	ad, bd, cd := a.data, b.data, c.data
	for i := 0; i < a.r; i++ {
		crow := cd[i*p : (i+1)*p]
		for k := 0; k < n; k++ {
			aik := ad[i*n+k]
			brow := bd[k*p : (k+1)*p]
			for j := range crow {
				crow[j] += aik * brow[j]
			}
		}
	}

	return nil
}

// MulBLAS computes C = A·B through the registered complex128 BLAS (zgemm)
// with alpha=1, beta=0 and no transposition, all operands row-major.
//
// By default cblas128 dispatches to gonum's pure-Go implementation; a cgo
// backend (e.g. OpenBLAS via gonum.org/v1/netlib) can be installed with
// cblas128.Use without touching this kernel.
//
// Complexity:
//   - Time O(r*n*c); memory behaviour is the implementation's.
func MulBLAS(a, b, c *Dense) error {
	if err := ValidateMulInto(a, b, c); err != nil {
		return matrixErrorf(opMulBLAS, err)
	}

	cblas128.Gemm(blas.NoTrans, blas.NoTrans,
		1, general(a), general(b),
		0, general(c))

	return nil
}

// general views d as a cblas128.General without copying.
func general(d *Dense) cblas128.General {
	return cblas128.General{Rows: d.r, Cols: d.c, Stride: d.c, Data: d.data}
}

// MulBlocked computes C = A·B with a cache-blocked kernel over Bᵀ.
//
// Implementation:
//   - Stage 1: validate shapes and block size; zero C.
//   - Stage 2: transpose B into a scratch buffer so both operands of every
//     dot product are read along rows.
//   - Stage 3: tile the i/j/k space into blockSize cubes; for each (i,j) in a
//     tile accumulate the partial dot product over the k-tile and add it
//     into C. Edge tiles are clipped with min(), so any blockSize ≥ 1 works.
//
// Complexity:
//   - Time O(r*n*c), Space O(n*c) for Bᵀ.
func MulBlocked(a, b, c *Dense, blockSize int) error {
	if err := ValidateMulInto(a, b, c); err != nil {
		return matrixErrorf(opMulBlocked, err)
	}
	if blockSize <= 0 {
		return matrixErrorf(opMulBlocked, ErrInvalidBlockSize)
	}
	c.Zero()

	bt := transposeData(b)
	rows, inner, cols := a.r, a.c, b.c
	ad, cd := a.data, c.data

	for ii := 0; ii < rows; ii += blockSize {
		iEnd := min(ii+blockSize, rows)
		for jj := 0; jj < cols; jj += blockSize {
			jEnd := min(jj+blockSize, cols)
			for kk := 0; kk < inner; kk += blockSize {
				kEnd := min(kk+blockSize, inner)
				for i := ii; i < iEnd; i++ {
					arow := ad[i*inner+kk : i*inner+kEnd]
					for j := jj; j < jEnd; j++ {
						btrow := bt[j*inner+kk : j*inner+kEnd]
						var sum complex128
						for k, av := range arow {
							sum += av * btrow[k]
						}
						cd[i*cols+j] += sum
					}
				}
			}
		}
	}

	return nil
}

// Transpose returns a new matrix mᵀ.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return &Dense{r: m.c, c: m.r, data: transposeData(m)}, nil
}

// transposeData returns the row-major buffer of mᵀ.
// data[i*cols + j] → out[j*rows + i].
func transposeData(m *Dense) []complex128 {
	out := make([]complex128, len(m.data))
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// Flops returns the real floating-point operation count of an n×n complex
// product: n³ complex multiply-adds at 8 flops each.
func Flops(n int) float64 {
	f := float64(n)

	return 8 * f * f * f
}
