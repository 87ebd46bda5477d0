package maze

import "fmt"

// Option configures a Solver via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation by the solver constructor.
type Option func(*Options)

// Options holds parameters shared by every Solver variant.
type Options struct {
	// Conn selects 4- or 8-neighbour moves.
	Conn Connectivity

	// MaxDepth, if > 0, stops expanding cells at this BFS depth; targets
	// further away are reported unreachable. 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Conn4 and no depth limit.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity sets the neighbour model.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}

// expands reports whether a cell at depth d may enqueue its neighbours.
func (o Options) expands(d int) bool {
	return o.MaxDepth == 0 || d < o.MaxDepth
}
