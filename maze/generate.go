package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultWallProbability is the percentage of cells turned into walls.
const DefaultWallProbability = 25

// GenerateOption configures Generate.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	wallPct int
	seed    int64
	seeded  bool
	err     error
}

// WithWallProbability sets the wall percentage in [0, 100].
func WithWallProbability(pct int) GenerateOption {
	return func(o *generateOptions) {
		if pct < 0 || pct > 100 {
			o.err = fmt.Errorf("%w: wall probability %d%% outside [0,100]", ErrOptionViolation, pct)
			return
		}
		o.wallPct = pct
	}
}

// WithSeed makes generation reproducible. Without it the source is seeded
// from the wall clock, so each run sees a new maze.
func WithSeed(seed int64) GenerateOption {
	return func(o *generateOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// Generate builds a random rows×cols maze: each cell is a wall with the
// configured probability, then the top-left and bottom-right corners are
// forced open so the default start and end are never walls.
// Errors: ErrInvalidDimensions, ErrOptionViolation.
// Complexity: O(N×M).
func Generate(rows, cols int, opts ...GenerateOption) (*Grid, error) {
	o := generateOptions{wallPct: DefaultWallProbability}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	g, err := newBlankGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(o.seed))
	for i := range g.cells {
		if rng.Intn(100) < o.wallPct {
			g.cells[i] = Wall
		}
	}
	g.cells[0] = Open
	g.cells[len(g.cells)-1] = Open

	return g, nil
}

// Corners returns the default start (top-left) and end (bottom-right).
// A nil grid returns two zero Points.
func Corners(g *Grid) (start, end Point) {
	if g == nil {
		return Point{}, Point{}
	}
	return Point{0, 0}, Point{g.rows - 1, g.cols - 1}
}

// EdgeEndpoints returns the open cells along one side of g, in row-major
// order. They serve as default entries and exits for Reachable, which
// rejects the empty result of a nil grid with ErrNoEndpoints.
func EdgeEndpoints(g *Grid, side Side) []Point {
	if g == nil {
		return nil
	}
	var pts []Point
	switch side {
	case Top, Bottom:
		r := 0
		if side == Bottom {
			r = g.rows - 1
		}
		for c := 0; c < g.cols; c++ {
			if p := (Point{r, c}); g.IsOpen(p) {
				pts = append(pts, p)
			}
		}
	case Left, Right:
		c := 0
		if side == Right {
			c = g.cols - 1
		}
		for r := 0; r < g.rows; r++ {
			if p := (Point{r, c}); g.IsOpen(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}
