package maze

import (
	"context"
	"fmt"
)

// llNode is one open cell. Walls have no node.
type llNode struct {
	row, col int
	adj      *llEdge // neighbours, in probing order
	next     *llNode // all-nodes list, walked by reset

	visited bool
	target  bool
	parent  *llNode
}

// llEdge is a link in a node's singly linked adjacency list.
type llEdge struct {
	to   *llNode
	next *llEdge
}

// llItem is a queued node with its BFS depth.
type llItem struct {
	node  *llNode
	depth int
	next  *llItem
}

// llQueue is a FIFO of llItems. Popped items go to a free list and are
// reused by later pushes, so steady-state searches do not allocate.
type llQueue struct {
	head, tail *llItem
	free       *llItem
}

func (q *llQueue) push(n *llNode, depth int) {
	it := q.free
	if it != nil {
		q.free = it.next
	} else {
		it = new(llItem)
	}
	it.node, it.depth, it.next = n, depth, nil
	if q.tail == nil {
		q.head = it
	} else {
		q.tail.next = it
	}
	q.tail = it
}

func (q *llQueue) pop() (*llNode, int) {
	it := q.head
	q.head = it.next
	if q.head == nil {
		q.tail = nil
	}
	n, d := it.node, it.depth
	it.node, it.next = nil, q.free
	q.free = it
	return n, d
}

func (q *llQueue) empty() bool { return q.head == nil }

// drain returns every still-queued item to the free list.
func (q *llQueue) drain() {
	for !q.empty() {
		q.pop()
	}
}

// LinkedListSolver turns every open cell into a heap node whose neighbours
// are linked at Load time, then runs BFS with a hand-rolled linked queue.
// The coordinate lookup table is only used to resolve query points.
type LinkedListSolver struct {
	rows, cols int
	opts       Options
	lookup     [][]*llNode
	nodes      *llNode
	queue      llQueue
	loaded     bool
}

var _ Solver = (*LinkedListSolver)(nil)

// NewLinkedListSolver creates a solver for rows×cols mazes.
// Errors: ErrInvalidDimensions, ErrOptionViolation.
func NewLinkedListSolver(rows, cols int, opts ...Option) (*LinkedListSolver, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	lookup := make([][]*llNode, rows)
	for r := range lookup {
		lookup[r] = make([]*llNode, cols)
	}
	return &LinkedListSolver{rows: rows, cols: cols, opts: o, lookup: lookup}, nil
}

// Name implements Solver.
func (s *LinkedListSolver) Name() string { return labelLinkedList }

// Load implements Solver. Rebuilds every node and adjacency list.
func (s *LinkedListSolver) Load(g *Grid) error {
	if g == nil {
		return ErrEmptyGrid
	}
	if g.rows != s.rows || g.cols != s.cols {
		return fmt.Errorf("%w: grid %dx%d, solver %dx%d", ErrDimensionMismatch, g.rows, g.cols, s.rows, s.cols)
	}

	// Pass 1: one node per open cell, threaded onto the all-nodes list in
	// row-major order.
	s.nodes = nil
	var last *llNode
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if g.cells[r*g.cols+c] != Open {
				s.lookup[r][c] = nil
				continue
			}
			n := &llNode{row: r, col: c}
			s.lookup[r][c] = n
			if last == nil {
				s.nodes = n
			} else {
				last.next = n
			}
			last = n
		}
	}

	// Pass 2: link neighbours, appending so the list keeps probing order.
	offs := s.opts.Conn.offsets()
	for n := s.nodes; n != nil; n = n.next {
		var tail *llEdge
		for _, d := range offs {
			nr, nc := n.row+d[0], n.col+d[1]
			if nr < 0 || nr >= s.rows || nc < 0 || nc >= s.cols || s.lookup[nr][nc] == nil {
				continue
			}
			e := &llEdge{to: s.lookup[nr][nc]}
			if tail == nil {
				n.adj = e
			} else {
				tail.next = e
			}
			tail = e
		}
	}
	s.loaded = true
	return nil
}

// Search implements Solver.
func (s *LinkedListSolver) Search(ctx context.Context, q Query) (Result, error) {
	if !s.loaded {
		return notFound(0), ErrNotLoaded
	}
	p, err := planQuery(s.rows, s.cols, func(r, c int) bool { return s.lookup[r][c] != nil }, q)
	if err != nil {
		return notFound(0), err
	}
	if len(p.sources) == 0 || len(p.targets) == 0 {
		return notFound(0), nil
	}
	defer s.reset()

	for _, t := range p.targets {
		s.lookup[t.Row][t.Col].target = true
	}
	for _, src := range p.sources {
		n := s.lookup[src.Row][src.Col]
		n.visited = true
		n.parent = nil
		s.queue.push(n, 0)
	}

	visited := 0
	for !s.queue.empty() {
		if visited&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return notFound(visited), err
			}
		}
		n, depth := s.queue.pop()
		visited++

		if n.target {
			res := Result{Found: true, Distance: depth, Reached: Point{n.row, n.col}, Visited: visited}
			if p.track {
				for at := n; at != nil; at = at.parent {
					res.Path = append(res.Path, Point{at.row, at.col})
				}
				res.Path = reversePath(res.Path)
			}
			return res, nil
		}
		if !s.opts.expands(depth) {
			continue
		}
		for e := n.adj; e != nil; e = e.next {
			if e.to.visited {
				continue
			}
			e.to.visited = true
			e.to.parent = n
			s.queue.push(e.to, depth+1)
		}
	}
	return notFound(visited), nil
}

// reset clears per-search state on every node and empties the queue.
func (s *LinkedListSolver) reset() {
	s.queue.drain()
	for n := s.nodes; n != nil; n = n.next {
		n.visited, n.target, n.parent = false, false, nil
	}
}
