package bench_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/labbench/bench"
	"github.com/katalvlaran/labbench/maze"
	"github.com/stretchr/testify/require"
)

func seededMaze(rows, cols int) bench.MazeConfig {
	cfg := bench.DefaultMazeConfig(rows, cols)
	cfg.Seed, cfg.Seeded = 42, true
	return cfg
}

func TestRunMaze_AllSolversAgree(t *testing.T) {
	cfg := seededMaze(60, 45)
	cfg.Multi = true
	cfg.Repeat = bench.Repeat{Warmup: 1, Rounds: 3}

	rep, err := bench.RunMaze(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, rep.Seed)
	require.Equal(t, int64(42), *rep.Seed)
	require.Equal(t, 60, rep.Rows)
	require.Equal(t, 45, rep.Cols)
	require.Positive(t, rep.Regions)
	require.Positive(t, rep.Entries)
	require.True(t, rep.Agree)

	require.Len(t, rep.Solvers, 3)
	for _, s := range rep.Solvers {
		require.False(t, s.Failed(), s.Err)
		require.Equal(t, 3, s.Solve.Stats.Rounds)
		require.NotNil(t, s.Multi)
		if s.Solve.Found {
			require.Equal(t, s.Solve.Distance+1, s.PathLen)
		} else {
			require.Zero(t, s.PathLen)
		}
	}
}

func TestRunMaze_SeedReproducible(t *testing.T) {
	a, err := bench.RunMaze(context.Background(), seededMaze(30, 30), nil)
	require.NoError(t, err)
	b, err := bench.RunMaze(context.Background(), seededMaze(30, 30), nil)
	require.NoError(t, err)
	require.Equal(t, a.OpenCells, b.OpenCells)
	require.Len(t, a.Digest, 64)
	require.Equal(t, a.Digest, b.Digest)
	require.Equal(t, a.Solvers[0].Solve.Found, b.Solvers[0].Solve.Found)
	require.Equal(t, a.Solvers[0].Solve.Distance, b.Solvers[0].Solve.Distance)
}

func TestRunMaze_UnseededRecordsSeed(t *testing.T) {
	cfg := bench.DefaultMazeConfig(12, 12)
	rep, err := bench.RunMaze(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, rep.Seed)
	require.NotZero(t, *rep.Seed)

	cfg.Seed, cfg.Seeded = *rep.Seed, true
	again, err := bench.RunMaze(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Equal(t, rep.Digest, again.Digest, "the recorded seed reproduces the maze")
}

func TestRunMaze_ZeroSeedIsRecorded(t *testing.T) {
	cfg := bench.DefaultMazeConfig(8, 8)
	cfg.Seed, cfg.Seeded = 0, true
	rep, err := bench.RunMaze(context.Background(), cfg, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"seed":0`)
}

func TestRunMaze_GivenGrid(t *testing.T) {
	g, err := maze.NewGrid([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	cfg := bench.DefaultMazeConfig(0, 0)
	cfg.Grid = g

	rep, err := bench.RunMaze(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Nil(t, rep.Seed)
	require.Equal(t, 1, rep.Regions)
	for _, s := range rep.Solvers {
		require.True(t, s.Solve.Found)
		require.Equal(t, 4, s.Solve.Distance)
		require.Equal(t, 5, s.PathLen)
	}
}

// TestRunMaze_FailingSolverIsReported exceeds the fixed array capacity: that
// variant fails while the others still run.
func TestRunMaze_FailingSolverIsReported(t *testing.T) {
	rep, err := bench.RunMaze(context.Background(), seededMaze(maze.MaxSize+1, 3), nil)
	require.NoError(t, err)
	require.Len(t, rep.Solvers, 3)
	require.True(t, rep.Solvers[0].Failed())
	require.Contains(t, rep.Solvers[0].Err, "create")
	require.False(t, rep.Solvers[1].Failed())
	require.False(t, rep.Solvers[2].Failed())
	require.True(t, rep.Agree)

	cfg := seededMaze(maze.MaxSize+1, 3)
	cfg.Variants = []string{maze.VariantArray}
	_, err = bench.RunMaze(context.Background(), cfg, nil)
	require.ErrorIs(t, err, bench.ErrNoResults)
}

func TestRunMaze_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := bench.RunMaze(ctx, seededMaze(0, 5), nil)
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)

	cfg := seededMaze(5, 5)
	cfg.WallPct = 150
	_, err = bench.RunMaze(ctx, cfg, nil)
	require.ErrorIs(t, err, maze.ErrOptionViolation)

	cfg = seededMaze(5, 5)
	cfg.Variants = []string{"tree"}
	_, err = bench.RunMaze(ctx, cfg, nil)
	require.ErrorIs(t, err, maze.ErrOptionViolation)

	cfg = seededMaze(5, 5)
	cfg.Repeat.Warmup = -1
	_, err = bench.RunMaze(ctx, cfg, nil)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = bench.RunMaze(cancelled, seededMaze(5, 5), nil)
	require.ErrorIs(t, err, context.Canceled)
}
