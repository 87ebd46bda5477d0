package maze

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadDimensions reads "N M" from r. Both must be positive integers and
// N×M must not exceed MaxCells.
// Errors: ErrBadFormat for missing or non-integer input,
// ErrInvalidDimensions for non-positive or oversized values.
func ReadDimensions(r io.Reader) (rows, cols int, err error) {
	if _, err = fmt.Fscan(r, &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w: reading dimensions: %v", ErrBadFormat, err)
	}
	if err = checkDimensions(rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// Read parses a maze: a "N M" header followed by N×M cell digits, 0 for
// open and 1 for wall. Digits may be packed per row ("0110") or separated
// by any whitespace; only the total count and the alphabet are checked.
// The header is checked against MaxCells before the grid is allocated.
// Errors: ErrBadFormat, ErrInvalidDimensions, ErrInvalidCell.
// Complexity: O(N×M).
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	dims := [2]int{}
	for i := range dims {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: missing dimensions header", ErrBadFormat)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: dimension %q is not an integer", ErrBadFormat, sc.Text())
		}
		dims[i] = v
	}
	g, err := newBlankGrid(dims[0], dims[1])
	if err != nil {
		return nil, err
	}

	n := 0
	for sc.Scan() {
		for _, ch := range sc.Bytes() {
			if n == len(g.cells) {
				return nil, fmt.Errorf("%w: more than %d cells", ErrBadFormat, len(g.cells))
			}
			switch ch {
			case '0':
				g.cells[n] = Open
			case '1':
				g.cells[n] = Wall
			default:
				p := g.point(n)
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidCell, ch, p)
			}
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if n != len(g.cells) {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrBadFormat, n, len(g.cells))
	}

	return g, nil
}
