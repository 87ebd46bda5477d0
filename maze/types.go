package maze

import (
	"fmt"
	"strings"
)

// Cell is the value of a single maze square.
type Cell uint8

const (
	// Open is a passable cell.
	Open Cell = 0
	// Wall blocks movement.
	Wall Cell = 1
)

// Point is a cell coordinate; (0,0) is the top-left corner.
type Point struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// ParseConnectivity accepts "4" or "8".
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.TrimSpace(s) {
	case "4", "":
		return Conn4, nil
	case "8":
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("%w: connectivity %q (want 4 or 8)", ErrOptionViolation, s)
	}
}

var (
	// conn4 follows the up, down, left, right probing order of the lab solvers.
	conn4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	conn8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// offsets returns the (dRow, dCol) neighbor offsets for c.
// Every variant expands neighbors in this exact order, which makes their
// visit order, reached target and reconstructed path identical.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return conn8
	}
	return conn4
}

// Side names one border of the grid.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// String returns the lower-case side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
