package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labbench/bench"
	"github.com/katalvlaran/labbench/maze"
)

// dimsPrompt is shown when neither dimensions nor an input file are given.
const dimsPrompt = "Enter maze dimensions (N M): "

// maze: generate (or read) one maze and time every BFS solver on it.
func mazeCmd(a *app) *cobra.Command {
	var (
		cfg      = bench.DefaultMazeConfig(0, 0)
		input    string
		conn     string
		format   string
		variants []string
	)

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Benchmark BFS over array, linked-list and slice solvers",
		Long: `Benchmark BFS over array, linked-list and slice solvers.

The maze comes from --input (a file, or - for stdin, in the "N M" + rows of
0/1 format) or is generated at --rows × --cols with --walls percent walls.
Without either, the dimensions are read from stdin after a prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bench.ParseFormat(format)
			if err != nil {
				return err
			}
			if cfg.Conn, err = maze.ParseConnectivity(conn); err != nil {
				return err
			}
			cfg.Variants = variants
			cfg.Seeded = cmd.Flags().Changed("seed")

			fl := cmd.Flags()
			switch {
			case input != "":
				if fl.Changed("rows") || fl.Changed("cols") {
					return fmt.Errorf("%w: --input excludes --rows/--cols", maze.ErrOptionViolation)
				}
				if cfg.Grid, err = a.readMaze(input); err != nil {
					return err
				}
			case fl.Changed("rows") != fl.Changed("cols"):
				return fmt.Errorf("%w: --rows and --cols go together", maze.ErrInvalidDimensions)
			case !fl.Changed("rows"):
				// The prompt goes to stdout only when stdout is the human report.
				prompt := a.out
				if f != bench.FormatText {
					prompt = a.errOut
				}
				fmt.Fprint(prompt, dimsPrompt)
				if cfg.Rows, cfg.Cols, err = maze.ReadDimensions(a.in); err != nil {
					return err
				}
			}

			rep, runErr := bench.RunMaze(cmd.Context(), cfg, a.logger)
			if runErr != nil && !errors.Is(runErr, bench.ErrNoResults) {
				return runErr
			}
			doc := bench.NewDocument()
			doc.Maze = rep
			if err = doc.Write(a.out, f); err != nil {
				return err
			}
			switch {
			case runErr != nil:
				return runErr
			case !rep.Agree:
				return errDisagree
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&cfg.Rows, "rows", "r", 0, "maze rows N")
	fl.IntVarP(&cfg.Cols, "cols", "c", 0, "maze columns M")
	fl.StringVarP(&input, "input", "i", "", "read the maze from a file (- for stdin)")
	fl.Int64Var(&cfg.Seed, "seed", 0, "generator seed (default: time based)")
	fl.IntVar(&cfg.WallPct, "walls", cfg.WallPct, "wall percentage of generated mazes")
	fl.StringVar(&conn, "conn", "4", "neighbour connectivity: 4 or 8")
	fl.BoolVarP(&cfg.Multi, "multi", "m", false, "also test top-row → bottom-row reachability")
	fl.StringSliceVar(&variants, "solvers", nil,
		"solvers to run ("+maze.VariantArray+","+maze.VariantLinkedList+","+maze.VariantSlice+"); default all")
	fl.IntVar(&cfg.Repeat.Rounds, "rounds", cfg.Repeat.Rounds, "timed searches per solver")
	fl.IntVar(&cfg.Repeat.Warmup, "warmup", cfg.Repeat.Warmup, "untimed searches per solver before timing")
	fl.StringVarP(&format, "format", "f", string(bench.FormatText), "report format: text, csv or json")
	return cmd
}

// readMaze parses path, or stdin for "-".
func (a *app) readMaze(path string) (*maze.Grid, error) {
	var r io.Reader = a.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return maze.Read(r)
}
