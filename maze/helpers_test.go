package maze_test

import (
	"testing"

	"github.com/katalvlaran/labbench/maze"
	"github.com/stretchr/testify/require"
)

// MustGrid builds a Grid from literal rows or fails the test.
func MustGrid(tb testing.TB, rows [][]int) *maze.Grid {
	tb.Helper()
	g, err := maze.NewGrid(rows)
	require.NoError(tb, err)

	return g
}

// MustGenerate returns a seeded random maze or fails the test.
func MustGenerate(tb testing.TB, rows, cols int, seed int64) *maze.Grid {
	tb.Helper()
	g, err := maze.Generate(rows, cols, maze.WithSeed(seed))
	require.NoError(tb, err)

	return g
}

// loadedSolvers builds and loads every variant for g.
func loadedSolvers(tb testing.TB, g *maze.Grid, opts ...maze.Option) []maze.Solver {
	tb.Helper()
	var out []maze.Solver
	for _, v := range maze.Variants() {
		s, err := v.New(g.Rows(), g.Cols(), opts...)
		require.NoError(tb, err, v.Name)
		require.NoError(tb, s.Load(g), v.Name)
		out = append(out, s)
	}

	return out
}

// requireValidPath checks that path is a walk of open, mutually adjacent
// cells from start to end whose length matches the BFS distance.
func requireValidPath(tb testing.TB, g *maze.Grid, conn maze.Connectivity, res maze.Result, start, end maze.Point) {
	tb.Helper()
	require.True(tb, res.Found)
	require.Len(tb, res.Path, res.Distance+1)
	require.Equal(tb, start, res.Path[0])
	require.Equal(tb, end, res.Path[len(res.Path)-1])
	for i, p := range res.Path {
		require.True(tb, g.IsOpen(p), "path cell %v is a wall", p)
		if i == 0 {
			continue
		}
		dr, dc := abs(p.Row-res.Path[i-1].Row), abs(p.Col-res.Path[i-1].Col)
		switch conn {
		case maze.Conn4:
			require.Equal(tb, 1, dr+dc, "step %v→%v", res.Path[i-1], p)
		default:
			require.True(tb, max(dr, dc) == 1, "step %v→%v", res.Path[i-1], p)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
