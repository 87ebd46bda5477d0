package maze

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidCell indicates a cell value other than 0 (open) or 1 (wall).
	ErrInvalidCell = errors.New("maze: cell must be 0 (open) or 1 (wall)")
	// ErrInvalidDimensions indicates non-positive dimensions, more than
	// MaxCells cells, or dimensions above a solver's fixed capacity.
	ErrInvalidDimensions = errors.New("maze: invalid maze dimensions")
	// ErrDimensionMismatch indicates a grid whose size differs from the solver's.
	ErrDimensionMismatch = errors.New("maze: input maze dimensions don't match solver dimensions")
	// ErrNotLoaded indicates a search on a solver with no maze loaded.
	ErrNotLoaded = errors.New("maze: no maze loaded")
	// ErrOutOfBounds indicates a query coordinate outside the maze.
	ErrOutOfBounds = errors.New("maze: coordinates out of maze bounds")
	// ErrNoPath indicates no route exists between the requested endpoints.
	ErrNoPath = errors.New("maze: no path between endpoints")
	// ErrNoEndpoints indicates an empty entry or exit set.
	ErrNoEndpoints = errors.New("maze: at least one entry and one exit required")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
	// ErrBadFormat indicates unparsable maze text.
	ErrBadFormat = errors.New("maze: malformed maze input")
)
