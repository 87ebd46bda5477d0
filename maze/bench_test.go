package maze_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/labbench/maze"
)

// benchSolve measures corner-to-corner search on a seeded 25%-wall maze.
// Only Search is timed; Load happens once in setup.
func benchSolve(b *testing.B, name string, n int) {
	g, err := maze.Generate(n, n, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	vs, err := maze.SelectVariants([]string{name})
	if err != nil {
		b.Fatal(err)
	}
	s, err := vs[0].New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	if err = s.Load(g); err != nil {
		b.Fatal(err)
	}
	start, end := maze.Corners(g)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Solve(ctx, s, start, end); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Array_1000(b *testing.B)      { benchSolve(b, maze.VariantArray, 1000) }
func BenchmarkSolve_LinkedList_1000(b *testing.B) { benchSolve(b, maze.VariantLinkedList, 1000) }
func BenchmarkSolve_Slice_1000(b *testing.B)      { benchSolve(b, maze.VariantSlice, 1000) }

// BenchmarkConnectedComponents labels a 1000×1000 maze.
func BenchmarkConnectedComponents(b *testing.B) {
	g, err := maze.Generate(1000, 1000, maze.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maze.ConnectedComponents(g, maze.Conn4)
	}
}
