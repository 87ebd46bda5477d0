package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labbench/bench"
	"github.com/katalvlaran/labbench/matrix"
)

// matmul: time the selected kernels on one seeded pair of N×N complex
// matrices and check that their products agree.
func matmulCmd(a *app) *cobra.Command {
	cfg := bench.DefaultMatMulConfig()
	var format string

	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Benchmark naive, BLAS and blocked complex matrix multiplication",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bench.ParseFormat(format)
			if err != nil {
				return err
			}
			rep, err := bench.RunMatMul(cmd.Context(), cfg, a.logger)
			if err != nil {
				return err
			}
			doc := bench.NewDocument()
			doc.MatMul = rep
			if err = doc.Write(a.out, f); err != nil {
				return err
			}
			if !rep.Agree() {
				return errDisagree
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&cfg.Size, "size", "n", cfg.Size, "matrix side N")
	fl.IntVarP(&cfg.BlockSize, "block", "b", cfg.BlockSize, "tile side of the blocked kernel")
	fl.Int64Var(&cfg.Seed, "seed", cfg.Seed, "operand generator seed")
	fl.Float64Var(&cfg.Epsilon, "eps", cfg.Epsilon, "per-component tolerance when comparing products")
	fl.StringSliceVarP(&cfg.Kernels, "kernels", "k", nil,
		"kernels to run ("+matrix.KernelNaive+","+matrix.KernelBLAS+","+matrix.KernelBlocked+"); default all")
	fl.IntVar(&cfg.Repeat.Rounds, "rounds", cfg.Repeat.Rounds, "timed runs per kernel")
	fl.IntVar(&cfg.Repeat.Warmup, "warmup", cfg.Repeat.Warmup, "untimed runs per kernel before timing")
	fl.StringVarP(&format, "format", "f", string(bench.FormatText), "report format: text, csv or json")
	return cmd
}
