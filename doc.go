// Package labbench is a pair of performance labs written as a Go module:
// dense complex matrix multiplication and breadth-first search over mazes.
//
// What is inside?
//
//	matrix/         Dense complex128 matrices and three GEMM kernels:
//	                 naive i-k-j loop, gonum BLAS zgemm, cache-blocked over Bᵀ
//	maze/           binary mazes, generation and parsing, three BFS solvers
//	                 (fixed arrays, linked nodes, growable slices) and
//	                 multi-entry / multi-exit reachability
//	bench/          warm-up and rounds, timing statistics, GFLOPS, text/CSV/JSON reports
//	internal/cpu/   host and SIMD feature description for report headers
//	cmd/labbench/   the command line: `labbench matmul`, `labbench maze`
//
// Quick start:
//
//	go run ./cmd/labbench matmul --size 1024
//	go run ./cmd/labbench maze --rows 1000 --cols 1000 --multi
//	echo "500 700" | go run ./cmd/labbench maze
//
// Every variant of a benchmark answers the same question, so each run also
// checks that the variants agree: products within a per-component tolerance,
// and identical reachability and distances for the solvers.
package labbench
