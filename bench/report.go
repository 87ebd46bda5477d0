package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/labbench/internal/cpu"
	"github.com/katalvlaran/labbench/matrix"
)

// Format is a report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts text, csv or json, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, csv or json)", ErrUnknownFormat, s)
	}
}

// Document is one benchmark run ready to be written out.
type Document struct {
	RunID     string        `json:"run_id"`
	Timestamp time.Time     `json:"timestamp"`
	Host      cpu.Host      `json:"host"`
	MatMul    *MatMulReport `json:"matmul,omitempty"`
	Maze      *MazeReport   `json:"maze,omitempty"`
}

// NewDocument stamps a fresh run id, the current time and the host.
func NewDocument() *Document {
	return &Document{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Host:      cpu.Detect(),
	}
}

// Write encodes d in format f.
func (d *Document) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return WriteText(w, d)
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatJSON:
		return WriteJSON(w, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// shortLabel names a kernel in agreement lines.
func shortLabel(kernel string) string {
	switch kernel {
	case matrix.KernelNaive:
		return "Simple"
	case matrix.KernelBLAS:
		return "BLAS"
	case matrix.KernelBlocked:
		return "Blocked"
	default:
		return kernel
	}
}

// WriteText writes the console report:
//
//	Simple multiplication:
//	  Time: 12.3456 s
//	  Performance: 1.39 GFlops
//	...
//	Simple and BLAS results match!
//
// and, for mazes, one "<name>: <n> μs, Path found|No path" line per solver.
func WriteText(w io.Writer, d *Document) error {
	tw := &textWriter{w: w}
	if m := d.MatMul; m != nil {
		tw.printf("Matrix size: %dx%d complex128 (block %d, seed %d)\n", m.Size, m.Size, m.BlockSize, m.Seed)
		tw.printf("Host: %s\n\n", d.Host)
		for _, k := range m.Kernels {
			tw.printf("%s:\n", k.Label)
			tw.printf("  Time: %.4f s\n", k.Stats.Mean.Seconds())
			tw.printf("  Performance: %.2f GFlops\n", k.GFLOPS)
			if k.Stats.Rounds > 1 {
				tw.printf("  Rounds: %d (min %.4f s, stddev %.4f s)\n",
					k.Stats.Rounds, k.Stats.Min.Seconds(), k.Stats.StdDev.Seconds())
			}
		}
		tw.printf("\n")
		for _, c := range m.Comparisons {
			if c.Match {
				tw.printf("%s and %s results match!\n", shortLabel(c.Kernel), shortLabel(c.Reference))
			} else {
				tw.printf("%s and %s results differ! (max |diff| = %g, eps = %g)\n",
					shortLabel(c.Kernel), shortLabel(c.Reference), c.MaxAbsDiff, m.Epsilon)
			}
		}
	}

	if m := d.Maze; m != nil {
		if d.MatMul != nil {
			tw.printf("\n")
		}
		tw.printf("Maze: %dx%d, %d open cells, %d regions, conn %s\n", m.Rows, m.Cols, m.OpenCells, m.Regions, m.Conn)
		for _, s := range m.Solvers {
			if s.Failed() {
				tw.printf("%s: error: %s\n", s.Name, s.Err)
				continue
			}
			tw.printf("%s: %d μs, %s\n", s.Name, s.Solve.Stats.Mean.Microseconds(), pathWord(s.Solve.Found))
			if s.Multi != nil {
				tw.printf("%s (multi %d→%d): %d μs, %s\n",
					s.Name, m.Entries, m.Exits, s.Multi.Stats.Mean.Microseconds(), pathWord(s.Multi.Found))
			}
		}
		if m.Agree {
			tw.printf("All solvers agree.\n")
		} else {
			tw.printf("Solvers disagree!\n")
		}
	}
	return tw.err
}

func pathWord(found bool) string {
	if found {
		return "Path found"
	}
	return "No path"
}

// textWriter keeps the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

var (
	matmulCSVHeader = []string{"run_id", "kernel", "size", "block", "rounds", "min_s", "mean_s", "stddev_s", "gflops"}
	mazeCSVHeader   = []string{"run_id", "variant", "rows", "cols", "rounds", "min_us", "mean_us", "stddev_us",
		"found", "distance", "visited", "multi_found", "multi_mean_us", "error"}
)

// WriteCSV writes one row per kernel and one row per solver, each section
// under its own header.
func WriteCSV(w io.Writer, d *Document) error {
	cw := csv.NewWriter(w)
	sec := func(d time.Duration) string {
		return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
	}
	us := func(d time.Duration) string {
		return strconv.FormatFloat(float64(d)/float64(time.Microsecond), 'f', -1, 64)
	}

	var rows [][]string
	if m := d.MatMul; m != nil {
		rows = append(rows, matmulCSVHeader)
		for _, k := range m.Kernels {
			rows = append(rows, []string{
				d.RunID, k.Name, strconv.Itoa(m.Size), strconv.Itoa(m.BlockSize), strconv.Itoa(k.Stats.Rounds),
				sec(k.Stats.Min), sec(k.Stats.Mean), sec(k.Stats.StdDev),
				strconv.FormatFloat(k.GFLOPS, 'f', -1, 64),
			})
		}
	}
	if m := d.Maze; m != nil {
		rows = append(rows, mazeCSVHeader)
		for _, s := range m.Solvers {
			multiFound, multiMean := "", ""
			if s.Multi != nil {
				multiFound, multiMean = strconv.FormatBool(s.Multi.Found), us(s.Multi.Stats.Mean)
			}
			st := s.Solve.Stats
			rows = append(rows, []string{
				d.RunID, s.Variant, strconv.Itoa(m.Rows), strconv.Itoa(m.Cols), strconv.Itoa(st.Rounds),
				us(st.Min), us(st.Mean), us(st.StdDev),
				strconv.FormatBool(s.Solve.Found), strconv.Itoa(s.Solve.Distance), strconv.Itoa(s.Solve.Visited),
				multiFound, multiMean, s.Err,
			})
		}
	}
	return cw.WriteAll(rows)
}
