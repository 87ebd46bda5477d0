package maze

import (
	"context"
	"fmt"
)

// step is a queued cell with its BFS depth.
type step struct {
	p     Point
	depth int
}

// SliceSolver runs BFS over growable containers: the maze and the visited
// overlay are [][]T sized to the loaded grid, targets live in a set, and the
// frontier is a slice consumed through a head index.
type SliceSolver struct {
	rows, cols int
	opts       Options
	cells      [][]Cell
	visited    [][]bool
	parent     [][]Point
	queue      []step // reused across searches
	loaded     bool
}

var _ Solver = (*SliceSolver)(nil)

// NewSliceSolver creates a solver for rows×cols mazes.
// Errors: ErrInvalidDimensions, ErrOptionViolation.
func NewSliceSolver(rows, cols int, opts ...Option) (*SliceSolver, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &SliceSolver{
		rows:    rows,
		cols:    cols,
		opts:    o,
		cells:   make([][]Cell, rows),
		visited: make([][]bool, rows),
		parent:  make([][]Point, rows),
	}
	for r := 0; r < rows; r++ {
		s.cells[r] = make([]Cell, cols)
		s.visited[r] = make([]bool, cols)
		s.parent[r] = make([]Point, cols)
	}
	return s, nil
}

// Name implements Solver.
func (s *SliceSolver) Name() string { return labelSlice }

// Load implements Solver.
func (s *SliceSolver) Load(g *Grid) error {
	if g == nil {
		return ErrEmptyGrid
	}
	if g.rows != s.rows || g.cols != s.cols {
		return fmt.Errorf("%w: grid %dx%d, solver %dx%d", ErrDimensionMismatch, g.rows, g.cols, s.rows, s.cols)
	}
	for r := range s.cells {
		copy(s.cells[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	s.loaded = true
	return nil
}

// Search implements Solver.
func (s *SliceSolver) Search(ctx context.Context, q Query) (Result, error) {
	if !s.loaded {
		return notFound(0), ErrNotLoaded
	}
	p, err := planQuery(s.rows, s.cols, func(r, c int) bool { return s.cells[r][c] == Open }, q)
	if err != nil {
		return notFound(0), err
	}
	if len(p.sources) == 0 || len(p.targets) == 0 {
		return notFound(0), nil
	}
	defer s.reset()

	targets := make(map[Point]struct{}, len(p.targets))
	for _, t := range p.targets {
		targets[t] = struct{}{}
	}
	s.queue = s.queue[:0]
	for _, src := range p.sources {
		s.visited[src.Row][src.Col] = true
		s.parent[src.Row][src.Col] = src
		s.queue = append(s.queue, step{p: src})
	}

	offs := s.opts.Conn.offsets()
	for head := 0; head < len(s.queue); head++ {
		if head&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return notFound(head), err
			}
		}
		cur := s.queue[head]

		if _, ok := targets[cur.p]; ok {
			res := Result{Found: true, Distance: cur.depth, Reached: cur.p, Visited: head + 1}
			if p.track {
				res.Path = s.path(cur.p)
			}
			return res, nil
		}
		if !s.opts.expands(cur.depth) {
			continue
		}
		for _, d := range offs {
			n := Point{cur.p.Row + d[0], cur.p.Col + d[1]}
			if n.Row < 0 || n.Row >= s.rows || n.Col < 0 || n.Col >= s.cols {
				continue
			}
			if s.cells[n.Row][n.Col] != Open || s.visited[n.Row][n.Col] {
				continue
			}
			s.visited[n.Row][n.Col] = true
			s.parent[n.Row][n.Col] = cur.p
			s.queue = append(s.queue, step{p: n, depth: cur.depth + 1})
		}
	}
	return notFound(len(s.queue)), nil
}

// path walks parents back to a source, which is its own parent.
func (s *SliceSolver) path(p Point) []Point {
	out := []Point{p}
	for {
		par := s.parent[p.Row][p.Col]
		if par == p {
			break
		}
		out = append(out, par)
		p = par
	}
	return reversePath(out)
}

func (s *SliceSolver) reset() {
	for r := range s.visited {
		clear(s.visited[r])
	}
}
