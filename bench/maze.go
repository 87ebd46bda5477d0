package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/labbench/maze"
)

// MazeConfig selects the maze and solvers of a BFS benchmark.
type MazeConfig struct {
	// Grid, when set, is benchmarked as is and Rows, Cols, Seed and WallPct
	// are ignored.
	Grid *maze.Grid

	Rows, Cols int
	Seed       int64
	Seeded     bool // false: seed from the wall clock
	WallPct    int

	Conn     maze.Connectivity
	Multi    bool     // also run top-row → bottom-row reachability
	Variants []string // solver names; empty selects all
	Repeat   Repeat
}

// DefaultMazeConfig is a rows×cols maze with 25% walls, 4-connectivity and
// a single timed run per solver.
func DefaultMazeConfig(rows, cols int) MazeConfig {
	return MazeConfig{
		Rows:    rows,
		Cols:    cols,
		WallPct: maze.DefaultWallProbability,
		Conn:    maze.Conn4,
		Repeat:  DefaultRepeat(),
	}
}

// SearchResult is one timed search of one solver.
type SearchResult struct {
	Stats    Stats `json:"stats"`
	Found    bool  `json:"found"`
	Distance int   `json:"distance"`
	Visited  int   `json:"visited"`
}

// SolverResult collects everything measured for one variant. Err is set
// when the variant could not be built, loaded or searched; the other fields
// are then zero.
type SolverResult struct {
	Variant string        `json:"variant"`
	Name    string        `json:"name"`
	Solve   SearchResult  `json:"solve"`
	PathLen int           `json:"path_len"` // cells on the shortest path, 0 if none
	Multi   *SearchResult `json:"multi,omitempty"`
	Err     string        `json:"error,omitempty"`
}

// Failed reports whether the variant errored.
func (r SolverResult) Failed() bool { return r.Err != "" }

// MazeReport is the outcome of RunMaze.
type MazeReport struct {
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Seed      *int64 `json:"seed,omitempty"` // nil for a given grid
	WallPct   int    `json:"wall_pct,omitempty"`
	Conn      string `json:"conn"`
	Digest    string `json:"digest"` // BLAKE2b-256 of the maze text
	OpenCells int    `json:"open_cells"`
	Regions   int    `json:"regions"`
	Entries   int    `json:"entries,omitempty"`
	Exits     int    `json:"exits,omitempty"`
	Repeat    Repeat `json:"repeat"`

	Solvers []SolverResult `json:"solvers"`
	// Agree is true when every successful variant returned the same answers
	// and those answers match the connected-component labelling.
	Agree bool `json:"agree"`
}

// RunMaze generates (or takes) one maze and benchmarks every selected solver
// on it. A variant that fails is recorded with its error and logged; the
// remaining variants still run.
//
// Errors: ErrInvalidConfig, maze generation errors, ctx.Err(), and
// ErrNoResults when every variant failed.
func RunMaze(ctx context.Context, cfg MazeConfig, logger *slog.Logger) (*MazeReport, error) {
	logger = loggerOr(logger)
	if err := cfg.Repeat.Validate(); err != nil {
		return nil, err
	}
	variants, err := maze.SelectVariants(cfg.Variants)
	if err != nil {
		return nil, err
	}

	rep := &MazeReport{Conn: cfg.Conn.String(), Repeat: cfg.Repeat}
	g := cfg.Grid
	if g == nil {
		if !cfg.Seeded {
			cfg.Seed = time.Now().UnixNano()
		}
		g, err = maze.Generate(cfg.Rows, cfg.Cols, maze.WithSeed(cfg.Seed), maze.WithWallProbability(cfg.WallPct))
		if err != nil {
			return nil, err
		}
		seed := cfg.Seed
		rep.Seed, rep.WallPct = &seed, cfg.WallPct
	}
	rep.Rows, rep.Cols, rep.OpenCells, rep.Digest = g.Rows(), g.Cols(), g.OpenCount(), digestGrid(g)
	logger.Debug("maze ready", "rows", rep.Rows, "cols", rep.Cols, "open", rep.OpenCells, "generated", rep.Seed != nil)

	comps := maze.ConnectedComponents(g, cfg.Conn)
	rep.Regions = comps.Count

	start, end := maze.Corners(g)
	var entries, exits []maze.Point
	if cfg.Multi {
		entries, exits = maze.EdgeEndpoints(g, maze.Top), maze.EdgeEndpoints(g, maze.Bottom)
		rep.Entries, rep.Exits = len(entries), len(exits)
	}

	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := runSolver(ctx, v, g, cfg, start, end, entries, exits)
		if res.Failed() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			logger.Error("solver failed", "variant", v.Name, "err", res.Err)
		} else {
			logger.Info("solver done", "variant", v.Name, "mean", res.Solve.Stats.Mean, "found", res.Solve.Found)
		}
		rep.Solvers = append(rep.Solvers, res)
	}

	rep.Agree = agree(rep.Solvers, comps, start, end, entries, exits)
	for _, s := range rep.Solvers {
		if !s.Failed() {
			return rep, nil
		}
	}
	return rep, ErrNoResults
}

// runSolver builds, loads and times one variant.
func runSolver(ctx context.Context, v maze.Variant, g *maze.Grid, cfg MazeConfig, start, end maze.Point, entries, exits []maze.Point) SolverResult {
	res := SolverResult{Variant: v.Name, Name: v.Label}
	fail := func(stage string, err error) SolverResult {
		res.Err = fmt.Sprintf("%s: %v", stage, err)
		return res
	}

	s, err := v.New(g.Rows(), g.Cols(), maze.WithConnectivity(cfg.Conn))
	if err != nil {
		return fail("create", err)
	}
	if err = s.Load(g); err != nil {
		return fail("load", err)
	}

	q := maze.Query{Sources: []maze.Point{start}, Targets: []maze.Point{end}}
	var last maze.Result
	st, err := repeatRun(ctx, cfg.Repeat, nil, func() (err error) {
		last, err = s.Search(ctx, q)
		return err
	})
	if err != nil {
		return fail("solve", err)
	}
	res.Solve = SearchResult{Stats: st, Found: last.Found, Distance: last.Distance, Visited: last.Visited}

	sp, err := maze.ShortestPath(ctx, s, start, end)
	switch {
	case err == nil:
		res.PathLen = len(sp.Path)
	case !errors.Is(err, maze.ErrNoPath):
		return fail("shortest path", err)
	}

	if cfg.Multi {
		if len(entries) == 0 || len(exits) == 0 {
			res.Multi = &SearchResult{Distance: -1}
			return res
		}
		st, err = repeatRun(ctx, cfg.Repeat, nil, func() (err error) {
			last, err = maze.Reachable(ctx, s, entries, exits)
			return err
		})
		if err != nil {
			return fail("multi", err)
		}
		res.Multi = &SearchResult{Stats: st, Found: last.Found, Distance: last.Distance, Visited: last.Visited}
	}
	return res
}

// agree checks the successful variants against each other and against the
// component labelling.
func agree(results []SolverResult, comps *maze.Components, start, end maze.Point, entries, exits []maze.Point) bool {
	wantMulti := false
	for _, e := range entries {
		for _, x := range exits {
			wantMulti = wantMulti || comps.Same(e, x)
		}
	}

	var ref *SolverResult
	for i := range results {
		r := &results[i]
		if r.Failed() {
			continue
		}
		if r.Solve.Found != comps.Same(start, end) {
			return false
		}
		if r.Multi != nil && r.Multi.Found != wantMulti {
			return false
		}
		if ref == nil {
			ref = r
			continue
		}
		if r.Solve.Distance != ref.Solve.Distance || r.PathLen != ref.PathLen {
			return false
		}
		if (r.Multi == nil) != (ref.Multi == nil) {
			return false
		}
		if r.Multi != nil && (r.Multi.Found != ref.Multi.Found || r.Multi.Distance != ref.Multi.Distance) {
			return false
		}
	}
	return true
}
