package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/labbench/matrix"
)

// MatMulConfig selects the operands and kernels of a matrix benchmark.
type MatMulConfig struct {
	Size      int      // side of the square operands
	BlockSize int      // tile side of the blocked kernel
	Seed      int64    // operand generator seed
	Epsilon   float64  // per-component tolerance of the agreement check
	Kernels   []string // kernel names; empty selects all
	Repeat    Repeat
}

// DefaultMatMulConfig mirrors the lab setup: 2048×2048, 64-wide tiles,
// seed 42, tolerance 1e-6, every kernel once.
func DefaultMatMulConfig() MatMulConfig {
	return MatMulConfig{
		Size:      matrix.DefaultSize,
		BlockSize: matrix.DefaultBlockSize,
		Seed:      matrix.DefaultSeed,
		Epsilon:   matrix.DefaultEpsilon,
		Repeat:    DefaultRepeat(),
	}
}

// KernelResult is the timing of one kernel.
type KernelResult struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Stats  Stats   `json:"stats"`
	GFLOPS float64 `json:"gflops"` // from the mean round time
	Digest string  `json:"digest"` // BLAKE2b-256 of the product
}

// Comparison records how far one kernel's product is from the reference.
type Comparison struct {
	Kernel     string  `json:"kernel"`
	Reference  string  `json:"reference"`
	MaxAbsDiff float64 `json:"max_abs_diff"`
	Match      bool    `json:"match"`
}

// MatMulReport is the outcome of RunMatMul.
type MatMulReport struct {
	Size        int            `json:"size"`
	BlockSize   int            `json:"block_size"`
	Seed        int64          `json:"seed"`
	Epsilon     float64        `json:"epsilon"`
	Flops       float64        `json:"flops"`
	Repeat      Repeat         `json:"repeat"`
	Kernels     []KernelResult `json:"kernels"`
	Comparisons []Comparison   `json:"comparisons"`
}

// Agree reports whether every comparison matched.
func (r *MatMulReport) Agree() bool {
	for _, c := range r.Comparisons {
		if !c.Match {
			return false
		}
	}
	return true
}

// RunMatMul generates A and B from cfg.Seed, times every selected kernel on
// them, then compares each product against the BLAS one (or, when BLAS is not
// selected, against the first kernel). Each kernel writes into its own result
// matrix, which is zeroed before every run.
//
// Errors: ErrInvalidConfig, matrix option errors, ctx.Err(); a kernel error
// aborts the run.
func RunMatMul(ctx context.Context, cfg MatMulConfig, logger *slog.Logger) (*MatMulReport, error) {
	logger = loggerOr(logger)
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: matrix size %d", ErrInvalidConfig, cfg.Size)
	}
	if err := cfg.Repeat.Validate(); err != nil {
		return nil, err
	}
	opts := []matrix.Option{
		matrix.WithSeed(cfg.Seed),
		matrix.WithBlockSize(cfg.BlockSize),
		matrix.WithEpsilon(cfg.Epsilon),
	}
	eff, err := matrix.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	kernels, err := matrix.SelectKernels(cfg.Kernels, opts...)
	if err != nil {
		return nil, err
	}

	logger.Debug("generating operands", "size", cfg.Size, "seed", cfg.Seed)
	a, b, err := matrix.GeneratePair(cfg.Size, opts...)
	if err != nil {
		return nil, err
	}

	rep := &MatMulReport{
		Size:      cfg.Size,
		BlockSize: eff.BlockSize(),
		Seed:      eff.Seed(),
		Epsilon:   eff.Epsilon(),
		Flops:     matrix.Flops(cfg.Size),
		Repeat:    cfg.Repeat,
	}
	products := make([]*matrix.Dense, len(kernels))
	for i, k := range kernels {
		c, err := matrix.NewDense(cfg.Size, cfg.Size)
		if err != nil {
			return nil, err
		}
		logger.Debug("running kernel", "kernel", k.Name, "warmup", cfg.Repeat.Warmup, "rounds", cfg.Repeat.Rounds)
		st, err := repeatRun(ctx, cfg.Repeat, c.Zero, func() error { return k.Mul(a, b, c) })
		if err != nil {
			return nil, fmt.Errorf("bench: kernel %s: %w", k.Name, err)
		}
		products[i] = c
		res := KernelResult{Name: k.Name, Label: k.Label, Stats: st, GFLOPS: GFLOPS(rep.Flops, st.Mean), Digest: digestMatrix(c)}
		rep.Kernels = append(rep.Kernels, res)
		logger.Info("kernel done", "kernel", k.Name, "mean", st.Mean, "gflops", res.GFLOPS)
	}

	ref := 0
	for i, k := range kernels {
		if k.Name == matrix.KernelBLAS {
			ref = i
		}
	}
	for i, k := range kernels {
		if i == ref {
			continue
		}
		diff, err := matrix.MaxAbsDiff(products[i], products[ref])
		if err != nil {
			return nil, err
		}
		rep.Comparisons = append(rep.Comparisons, Comparison{
			Kernel:     k.Name,
			Reference:  kernels[ref].Name,
			MaxAbsDiff: diff,
			Match:      matrix.EqualApprox(products[i], products[ref], eff.Epsilon()),
		})
	}
	return rep, nil
}

// loggerOr substitutes a discarding logger for nil.
func loggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
