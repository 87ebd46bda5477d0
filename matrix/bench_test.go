// Package matrix_test provides benchmarks for the multiplication kernels,
// using deterministic random operands.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/labbench/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sink to defeat dead-code elimination
var sinkM *matrix.Dense

func benchmarkKernel(b *testing.B, mul matrix.MulFunc) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGenerate(b, n, n, 1337)
			B := MustGenerate(b, n, n, 4242)
			C := MustDense(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := mul(A, B, C); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()
			sinkM = C
			b.ReportMetric(matrix.Flops(n)*float64(b.N)/b.Elapsed().Seconds()*1e-9, "GFLOPS")
		})
	}
}

func BenchmarkMulNaive(b *testing.B) { benchmarkKernel(b, matrix.MulNaive) }

func BenchmarkMulBLAS(b *testing.B) { benchmarkKernel(b, matrix.MulBLAS) }

func BenchmarkMulBlocked(b *testing.B) {
	benchmarkKernel(b, func(a, bb, c *matrix.Dense) error {
		return matrix.MulBlocked(a, bb, c, matrix.DefaultBlockSize)
	})
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	A := MustGenerate(b, 512, 512, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Transpose(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
