package bench_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/labbench/bench"
	"github.com/katalvlaran/labbench/matrix"
	"github.com/stretchr/testify/require"
)

// smallMatMul is a fast configuration that still spans several tiles.
func smallMatMul() bench.MatMulConfig {
	cfg := bench.DefaultMatMulConfig()
	cfg.Size = 40
	cfg.BlockSize = 16
	return cfg
}

func TestRunMatMul_AllKernelsAgree(t *testing.T) {
	rep, err := bench.RunMatMul(context.Background(), smallMatMul(), nil)
	require.NoError(t, err)
	require.Equal(t, matrix.Flops(40), rep.Flops)
	require.Equal(t, 16, rep.BlockSize)
	require.Equal(t, matrix.DefaultSeed, rep.Seed)
	require.Equal(t, matrix.DefaultEpsilon, rep.Epsilon)
	require.Len(t, rep.Kernels, 3)
	for i, name := range []string{matrix.KernelNaive, matrix.KernelBLAS, matrix.KernelBlocked} {
		require.Equal(t, name, rep.Kernels[i].Name)
		require.Equal(t, 1, rep.Kernels[i].Stats.Rounds)
	}

	require.Len(t, rep.Comparisons, 2)
	for _, c := range rep.Comparisons {
		require.Equal(t, matrix.KernelBLAS, c.Reference)
		require.True(t, c.Match, "%s vs BLAS: max diff %g", c.Kernel, c.MaxAbsDiff)
	}
	require.True(t, rep.Agree())
}

func TestRunMatMul_ReferenceFallback(t *testing.T) {
	cfg := smallMatMul()
	cfg.Kernels = []string{matrix.KernelBlocked, matrix.KernelNaive}
	cfg.Repeat = bench.Repeat{Warmup: 1, Rounds: 2}

	rep, err := bench.RunMatMul(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, rep.Kernels, 2)
	require.Equal(t, 2, rep.Kernels[0].Stats.Rounds)
	require.Equal(t, []bench.Comparison{{
		Kernel:    matrix.KernelBlocked,
		Reference: matrix.KernelNaive,
		Match:     true,
	}}, rep.Comparisons, "integer-valued operands give exact products")
}

func TestRunMatMul_Errors(t *testing.T) {
	ctx := context.Background()

	cfg := smallMatMul()
	cfg.Size = 0
	_, err := bench.RunMatMul(ctx, cfg, nil)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	cfg = smallMatMul()
	cfg.Repeat.Rounds = 0
	_, err = bench.RunMatMul(ctx, cfg, nil)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	cfg = smallMatMul()
	cfg.Kernels = []string{"strassen"}
	_, err = bench.RunMatMul(ctx, cfg, nil)
	require.ErrorIs(t, err, matrix.ErrUnknownKernel)

	cfg = smallMatMul()
	cfg.Size = 100_000
	_, err = bench.RunMatMul(ctx, cfg, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cfg = smallMatMul()
	cfg.BlockSize = 0
	_, err = bench.RunMatMul(ctx, cfg, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidBlockSize)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = bench.RunMatMul(cancelled, smallMatMul(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunMatMul_Digests(t *testing.T) {
	cfg := smallMatMul()
	cfg.Kernels = []string{matrix.KernelNaive, matrix.KernelBlocked}

	a, err := bench.RunMatMul(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := bench.RunMatMul(context.Background(), cfg, nil)
	require.NoError(t, err)

	require.Len(t, a.Kernels[0].Digest, 64)
	require.Equal(t, a.Kernels[0].Digest, b.Kernels[0].Digest, "same seed, same product")
	require.Equal(t, a.Kernels[0].Digest, a.Kernels[1].Digest, "exact integer products are bitwise equal")

	cfg.Seed++
	c, err := bench.RunMatMul(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NotEqual(t, a.Kernels[0].Digest, c.Kernels[0].Digest)
}
