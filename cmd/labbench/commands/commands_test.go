package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labbench/bench"
	"github.com/katalvlaran/labbench/matrix"
	"github.com/katalvlaran/labbench/maze"
)

// runCLI executes one command line with in as stdin.
func runCLI(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, strings.NewReader(in), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMatmul_Text(t *testing.T) {
	out, _, err := runCLI(t, "", "matmul", "--size", "24", "--block", "8")
	require.NoError(t, err)
	require.Contains(t, out, "Simple multiplication:\n  Time: ")
	require.Contains(t, out, "Blocked transposed multiplication:\n")
	require.Contains(t, out, "Simple and BLAS results match!")
	require.Contains(t, out, "Blocked and BLAS results match!")
}

func TestMatmul_JSON(t *testing.T) {
	out, _, err := runCLI(t, "", "matmul", "-n", "16", "-k", "naive,blocked", "--rounds", "2", "-f", "json")
	require.NoError(t, err)

	var doc bench.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.RunID)
	require.NotNil(t, doc.MatMul)
	require.Len(t, doc.MatMul.Kernels, 2)
	require.Equal(t, 2, doc.MatMul.Kernels[0].Stats.Rounds)
	require.True(t, doc.MatMul.Agree())
}

func TestMatmul_Errors(t *testing.T) {
	_, stderr, err := runCLI(t, "", "matmul", "--size", "0")
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
	require.True(t, strings.HasPrefix(stderr, "Error: "))

	_, _, err = runCLI(t, "", "matmul", "--size", "8", "--format", "xml")
	require.ErrorIs(t, err, bench.ErrUnknownFormat)

	_, _, err = runCLI(t, "", "matmul", "--size", "abc")
	require.Error(t, err)
}

func TestMaze_PromptsForDimensions(t *testing.T) {
	out, _, err := runCLI(t, "15 20\n", "maze", "--seed", "7")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, dimsPrompt))
	require.Contains(t, out, "Maze: 15x20")
	for _, name := range []string{"Array implementation", "Linked list implementation", "Slice implementation"} {
		require.Contains(t, out, name+": ")
	}
	require.Contains(t, out, "All solvers agree.")
}

func TestMaze_BadDimensions(t *testing.T) {
	_, stderr, err := runCLI(t, "ten 3\n", "maze")
	require.ErrorIs(t, err, maze.ErrBadFormat)
	require.Contains(t, stderr, "Error: ")

	_, _, err = runCLI(t, "-4 3\n", "maze")
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, _, err = runCLI(t, "", "maze", "--rows", "5")
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, _, err = runCLI(t, "", "maze", "--rows", "0", "--cols", "5")
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

func TestOversizedDimensions(t *testing.T) {
	_, stderr, err := runCLI(t, "3037000500 3037000500\n", "maze")
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
	require.Contains(t, stderr, "Error: ")

	_, stderr, err = runCLI(t, "", "maze", "--rows", "100000", "--cols", "100000")
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
	require.Contains(t, stderr, "Error: ")

	_, _, err = runCLI(t, "100000 100000\n0\n", "maze", "--input", "-")
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, stderr, err = runCLI(t, "", "matmul", "--size", "4000000000")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.Contains(t, stderr, "Error: ")
}

func TestMaze_InputFromStdinAndFile(t *testing.T) {
	const text = "3 4\n0000\n1110\n0000\n"

	out, _, err := runCLI(t, text, "maze", "--input", "-", "--multi", "--format", "csv")
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(out, "\n"), "header plus one row per solver")
	require.NotContains(t, out, dimsPrompt)

	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	out, _, err = runCLI(t, "", "maze", "-i", path, "--solvers", "slice", "-f", "json")
	require.NoError(t, err)
	var doc bench.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Maze.Solvers, 1)
	require.True(t, doc.Maze.Solvers[0].Solve.Found)
	require.Equal(t, 5, doc.Maze.Solvers[0].Solve.Distance)

	_, _, err = runCLI(t, "3 4\n0000\n", "maze", "-i", "-")
	require.ErrorIs(t, err, maze.ErrBadFormat)

	_, _, err = runCLI(t, "", "maze", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaze_ArrayCapacityIsNotFatal(t *testing.T) {
	out, stderr, err := runCLI(t, "", "maze", "--rows", "1001", "--cols", "2", "--seed", "1", "--walls", "0")
	require.NoError(t, err)
	require.Contains(t, out, "Array implementation: error: ")
	require.Contains(t, out, "Slice implementation: ")
	require.Contains(t, stderr, "solver failed")
}

func TestRoot_LoggingFlags(t *testing.T) {
	_, stderr, err := runCLI(t, "", "--verbose", "--log-format", "json", "maze", "-r", "4", "-c", "4", "--seed", "2")
	require.NoError(t, err)
	require.Contains(t, stderr, `"level":"DEBUG"`)

	_, _, err = runCLI(t, "", "--log-format", "xml", "version")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "labbench dev\n"))
	require.Contains(t, out, "CPUs")
}
