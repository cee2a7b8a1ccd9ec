// Package builder generates deterministic integer graphs for tests,
// benchmarks and demos: paths, cycles, stars, complete graphs, grids,
// binary trees and random multigraphs.
//
// What:
//
//	Build(opts, cons...) creates an empty *core.Graph[int] and applies each
//	Constructor in order. Vertex IDs come from the configured ID scheme
//	(index i → i by default; WithIDOffset(1) gives the 1..n numbering of
//	graph text files).
//
// Why:
//
//   - Fixtures stay readable: builder.Grid(4, 5) instead of a page of AddEdge.
//   - Composition: Build(nil, Path(5), Star(5)) overlays topologies on one graph.
//   - Determinism: same options, seed and constructor order give the same
//     node and edge order, so neighbor-order-sensitive searches are repeatable.
//
// Constructors:
//
//	Path(n)              n ≥ 1    i — i+1
//	Cycle(n)             n ≥ 3    i — (i+1) mod n
//	Star(n)              n ≥ 2    0 — i
//	Complete(n)          n ≥ 1    every unordered pair once
//	Grid(rows, cols)     ≥ 1      right then down neighbor, ID r·cols+c
//	BinaryTree(depth)    ≥ 1      heap layout, children 2i+1, 2i+2
//	RandomEdges(n, m)    n ≥ 1    m uniform endpoint pairs, loops and
//	                              parallel edges allowed; needs WithSeed/WithRand
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidCount, ErrNeedRandSource, ErrConstructFailed,
//	always wrapped with the constructor name.
//
// Complexity: linear in the number of emitted nodes and edges.
package builder
