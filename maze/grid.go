package maze

import (
	"fmt"
	"strings"
)

// MaxCells caps N×M for every grid and solver (8192×8192).
const MaxCells = 1 << 26

// checkDimensions rejects non-positive sides and mazes above MaxCells.
// The quotient form cannot overflow.
func checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d is more than %d cells", ErrInvalidDimensions, rows, cols, MaxCells)
	}
	return nil
}

// Grid is a rectangular binary maze. It is immutable once built.
// Cells are stored row-major: index = row*Cols + col.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of 0/1
// values. It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidCell for values
// other than 0 or 1.
// Complexity: O(N×M) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if err := checkDimensions(h, w); err != nil {
		return nil, err
	}
	cells := make([]Cell, 0, h*w)
	for r, row := range values {
		for c, v := range row {
			if v != int(Open) && v != int(Wall) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, r, c)
			}
			cells = append(cells, Cell(v))
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// newBlankGrid returns an all-open rows×cols grid.
func newBlankGrid(rows, cols int) (*Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Rows returns N.
func (g *Grid) Rows() int { return g.rows }

// Cols returns M.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p; out-of-bounds points read as Wall.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// IsOpen reports whether p is inside the grid and passable.
func (g *Grid) IsOpen(p Point) bool { return g.At(p) == Open }

// OpenCount returns the number of passable cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Values returns a fresh [][]int copy of the maze.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.cells[r*g.cols+c])
		}
	}
	return out
}

// String renders the maze in the Read format: a "N M" header then one line
// of 0/1 digits per row.
func (g *Grid) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			sb.WriteByte('0' + byte(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps p to a row-major index.
func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

// point converts a row-major index back to a Point.
func (g *Grid) point(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}
