package maze

import (
	"context"
	"fmt"
	"strings"
)

// ctxCheckMask throttles cancellation checks to one per 1024 dequeues so the
// select does not dominate the timing of small mazes.
const ctxCheckMask = 1<<10 - 1

// Solver runs breadth-first search over a loaded maze. Implementations
// differ only in the data structures backing the grid, the visited overlay
// and the frontier; the probing order and results are identical.
//
// A Solver is reusable: visited state is reset after every Search, so
// repeated searches on the same maze never observe each other.
// Solvers are not safe for concurrent use.
type Solver interface {
	// Name returns a human label used in reports.
	Name() string
	// Load copies g into the solver's own representation.
	// Returns ErrDimensionMismatch if g is not the solver's size.
	Load(g *Grid) error
	// Search runs a multi-source BFS from q.Sources until any cell of
	// q.Targets is dequeued or the reachable region is exhausted.
	Search(ctx context.Context, q Query) (Result, error)
}

// Query describes one search.
type Query struct {
	Sources   []Point // entry cells; walls and duplicates are ignored
	Targets   []Point // exit cells; walls and duplicates are ignored
	TrackPath bool    // reconstruct Result.Path
}

// Result holds the outcome of a Search.
//   - Found: some target was reached.
//   - Distance: BFS depth of Reached from the nearest source, -1 if not found.
//   - Path: Reached back to its source, reversed into source→target order
//     (only when Query.TrackPath was set).
//   - Visited: number of cells dequeued, a proxy for work done.
type Result struct {
	Found    bool
	Distance int
	Reached  Point
	Path     []Point
	Visited  int
}

// notFound is the zero result of a failed search.
func notFound(visited int) Result {
	return Result{Distance: -1, Visited: visited}
}

// plan is a validated query.
type plan struct {
	sources, targets []Point
	track            bool
}

// planQuery bounds-checks every point, then drops walls and duplicates
// while keeping the caller's order. An endpoint on a wall is not an error:
// it simply cannot be part of a route.
func planQuery(rows, cols int, open func(r, c int) bool, q Query) (plan, error) {
	filter := func(kind string, in []Point) ([]Point, error) {
		out := make([]Point, 0, len(in))
		seen := make(map[Point]struct{}, len(in))
		for _, p := range in {
			if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
				return nil, fmt.Errorf("%w: %s %v in %dx%d maze", ErrOutOfBounds, kind, p, rows, cols)
			}
			if _, dup := seen[p]; dup || !open(p.Row, p.Col) {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
		return out, nil
	}

	src, err := filter("source", q.Sources)
	if err != nil {
		return plan{}, err
	}
	dst, err := filter("target", q.Targets)
	if err != nil {
		return plan{}, err
	}
	return plan{sources: src, targets: dst, track: q.TrackPath}, nil
}

// reversePath flips a target→source walk into source→target order.
func reversePath(path []Point) []Point {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solve reports whether end is reachable from start.
// Errors: ErrOutOfBounds for coordinates outside the maze; an endpoint on a
// wall yields false with no error.
func Solve(ctx context.Context, s Solver, start, end Point) (bool, error) {
	res, err := s.Search(ctx, Query{Sources: []Point{start}, Targets: []Point{end}})
	if err != nil {
		return false, err
	}
	return res.Found, nil
}

// ShortestPath returns the BFS distance and the cell sequence from start to
// end, both endpoints included.
// Errors: ErrOutOfBounds, or ErrNoPath (with the partial Result) when end is
// unreachable.
func ShortestPath(ctx context.Context, s Solver, start, end Point) (Result, error) {
	res, err := s.Search(ctx, Query{Sources: []Point{start}, Targets: []Point{end}, TrackPath: true})
	if err != nil {
		return res, err
	}
	if !res.Found {
		return res, fmt.Errorf("%w: %v → %v", ErrNoPath, start, end)
	}
	return res, nil
}

// Reachable reports whether any exit is reachable from any entry, using one
// multi-source BFS; Result.Reached is the first exit dequeued and
// Result.Distance the shortest entry→exit distance.
// Errors: ErrNoEndpoints if entries or exits is empty, ErrOutOfBounds.
func Reachable(ctx context.Context, s Solver, entries, exits []Point) (Result, error) {
	if len(entries) == 0 || len(exits) == 0 {
		return notFound(0), ErrNoEndpoints
	}
	return s.Search(ctx, Query{Sources: entries, Targets: exits})
}

// Canonical variant names, as accepted on the command line.
const (
	VariantArray      = "array"
	VariantLinkedList = "linkedlist"
	VariantSlice      = "slice"
)

// Report labels of the variants, as returned by Solver.Name.
const (
	labelArray      = "Array implementation"
	labelLinkedList = "Linked list implementation"
	labelSlice      = "Slice implementation"
)

// Variant binds a solver constructor to its name and report label.
type Variant struct {
	Name  string
	Label string
	New   func(rows, cols int, opts ...Option) (Solver, error)
}

// Variants returns the three solver variants in benchmark order.
func Variants() []Variant {
	return []Variant{
		{Name: VariantArray, Label: labelArray, New: func(r, c int, o ...Option) (Solver, error) {
			return NewArraySolver(r, c, o...)
		}},
		{Name: VariantLinkedList, Label: labelLinkedList, New: func(r, c int, o ...Option) (Solver, error) {
			return NewLinkedListSolver(r, c, o...)
		}},
		{Name: VariantSlice, Label: labelSlice, New: func(r, c int, o ...Option) (Solver, error) {
			return NewSliceSolver(r, c, o...)
		}},
	}
}

// SelectVariants filters Variants by name, keeping benchmark order.
// An empty list selects all of them.
func SelectVariants(names []string) ([]Variant, error) {
	all := Variants()
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		ok := false
		for _, v := range all {
			ok = ok || v.Name == n
		}
		if !ok {
			return nil, fmt.Errorf("%w: unknown solver %q (want %s, %s or %s)",
				ErrOptionViolation, n, VariantArray, VariantLinkedList, VariantSlice)
		}
		want[n] = true
	}
	out := make([]Variant, 0, len(want))
	for _, v := range all {
		if want[v.Name] {
			out = append(out, v)
		}
	}
	return out, nil
}
