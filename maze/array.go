package maze

import (
	"context"
	"fmt"
)

// MaxSize is the fixed capacity, per side, of ArraySolver.
const MaxSize = 1000

// visited-overlay bits of ArraySolver.state
const (
	stVisited uint8 = 1 << iota
	stTarget
)

// ArraySolver keeps the maze, the visited overlay, the parent links and the
// BFS queue in fixed MaxSize-sized arrays allocated once with the solver.
// Cells are addressed directly by [row][col]; queue entries and parents are
// encoded as row*MaxSize + col.
type ArraySolver struct {
	rows, cols int
	opts       Options
	loaded     bool

	cells  [MaxSize][MaxSize]Cell
	state  [MaxSize][MaxSize]uint8 // scratch overlay, reset after every search
	parent [MaxSize][MaxSize]int32
	queue  [MaxSize * MaxSize]int32 // each cell is enqueued at most once
}

var _ Solver = (*ArraySolver)(nil)

// NewArraySolver allocates a solver for rows×cols mazes.
// Errors: ErrInvalidDimensions when a side is ≤ 0 or > MaxSize,
// ErrOptionViolation for bad options.
func NewArraySolver(rows, cols int, opts ...Option) (*ArraySolver, error) {
	if rows <= 0 || cols <= 0 || rows > MaxSize || cols > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d (array capacity is %dx%d)", ErrInvalidDimensions, rows, cols, MaxSize, MaxSize)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	s := new(ArraySolver)
	s.rows, s.cols, s.opts = rows, cols, o
	return s, nil
}

// Name implements Solver.
func (s *ArraySolver) Name() string { return labelArray }

// Load implements Solver.
func (s *ArraySolver) Load(g *Grid) error {
	if g == nil {
		return ErrEmptyGrid
	}
	if g.rows != s.rows || g.cols != s.cols {
		return fmt.Errorf("%w: grid %dx%d, solver %dx%d", ErrDimensionMismatch, g.rows, g.cols, s.rows, s.cols)
	}
	for r := 0; r < s.rows; r++ {
		copy(s.cells[r][:s.cols], g.cells[r*g.cols:(r+1)*g.cols])
	}
	s.loaded = true
	return nil
}

// Search implements Solver.
func (s *ArraySolver) Search(ctx context.Context, q Query) (Result, error) {
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

	for _, t := range p.targets {
		s.state[t.Row][t.Col] |= stTarget
	}
	head, tail := 0, 0
	for _, src := range p.sources {
		s.state[src.Row][src.Col] |= stVisited
		s.parent[src.Row][src.Col] = -1
		s.queue[tail] = int32(src.Row*MaxSize + src.Col)
		tail++
	}

	offs := s.opts.Conn.offsets()
	visited := 0
	for depth := 0; head < tail; depth++ {
		levelEnd := tail
		for ; head < levelEnd; head++ {
			if visited&ctxCheckMask == 0 {
				if err := ctx.Err(); err != nil {
					return notFound(visited), err
				}
			}
			code := s.queue[head]
			r, c := int(code)/MaxSize, int(code)%MaxSize
			visited++

			if s.state[r][c]&stTarget != 0 {
				res := Result{Found: true, Distance: depth, Reached: Point{r, c}, Visited: visited}
				if p.track {
					res.Path = s.path(code)
				}
				return res, nil
			}
			if !s.opts.expands(depth) {
				continue
			}
			for _, d := range offs {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= s.rows || nc < 0 || nc >= s.cols {
					continue
				}
				if s.cells[nr][nc] != Open || s.state[nr][nc]&stVisited != 0 {
					continue
				}
				s.state[nr][nc] |= stVisited
				s.parent[nr][nc] = code
				s.queue[tail] = int32(nr*MaxSize + nc)
				tail++
			}
		}
	}
	return notFound(visited), nil
}

// path follows parent links from code back to a source.
func (s *ArraySolver) path(code int32) []Point {
	var out []Point
	for code >= 0 {
		r, c := int(code)/MaxSize, int(code)%MaxSize
		out = append(out, Point{r, c})
		code = s.parent[r][c]
	}
	return reversePath(out)
}

// reset clears the overlay on the rows×cols window in use.
func (s *ArraySolver) reset() {
	for r := 0; r < s.rows; r++ {
		clear(s.state[r][:s.cols])
	}
}
