package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// errDisagree is returned after the report when variants produced different
// answers.
var errDisagree = errors.New("variants disagree, see report")

// app carries the streams and logger shared by subcommands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger

	verbose   bool
	logFormat string
}

// Execute runs the CLI against the process streams and arguments.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// run executes one command line and reports a failure as "Error: <msg>" on
// errOut.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return err
	}
	return nil
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "labbench",
		Short:         "Matrix multiplication and maze BFS benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(matmulCmd(a), mazeCmd(a), versionCmd(a))
	return root
}

// setupLogger builds the stderr logger: warnings and errors by default,
// everything with --verbose.
func (a *app) setupLogger() error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch a.logFormat {
	case "text", "":
		a.logger = slog.New(slog.NewTextHandler(a.errOut, opts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, opts))
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", a.logFormat)
	}
	return nil
}
