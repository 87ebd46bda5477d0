// Package maze treats an N×M grid of open/wall cells as a graph and answers
// reachability and shortest-path queries with breadth-first search.
//
// What:
//
//   - Grid wraps a rectangular binary maze (0 = open, 1 = wall).
//   - Generate builds random mazes (25% walls by default) with open corners.
//   - Read parses "N M" followed by N rows of M cells from any io.Reader.
//   - Three Solver variants run the same BFS over different data structures:
//     ArraySolver (fixed MaxSize×MaxSize arrays), LinkedListSolver (a node
//     per open cell with linked adjacency and a linked FIFO), and SliceSolver
//     (growable slices and a map-backed target set).
//   - Solve, ShortestPath and Reachable drive any Solver; Reachable accepts
//     several entries and several exits (multi-source BFS).
//   - ConnectedComponents labels open regions for connectivity checks.
//
// Why:
//
//   - The variants exist to be benchmarked against each other: identical
//     semantics, different memory layouts.
//
// Complexity:
//
//   - Every search: O(N×M×d) time, where d = 4 or 8 neighbours.
//   - Memory: O(MaxSize²) for ArraySolver regardless of N×M; O(N×M) otherwise.
//
// Options:
//
//   - WithConnectivity: Conn4 (default) or Conn8.
//   - WithMaxDepth: stop expanding beyond a BFS depth (0 = unlimited).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell: bad grid input.
//   - ErrInvalidDimensions: non-positive or over-capacity dimensions.
//   - ErrDimensionMismatch: Load with a grid of a different size.
//   - ErrNotLoaded: Search before Load.
//   - ErrOutOfBounds: a query point lies outside the grid.
//   - ErrNoPath, ErrNoEndpoints, ErrOptionViolation, ErrBadFormat.
package maze
