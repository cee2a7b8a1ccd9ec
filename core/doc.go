// Package core provides the in-memory Graph store shared by every search in
// swapgraph: an undirected adjacency list over an arbitrary comparable node type.
//
// The Graph G = (V,E) keeps:
//
//   - Nodes in registration order (the initial list, then auto-added endpoints)
//   - Per-node neighbor lists in insertion order, duplicates preserved
//   - An edge log of (From, To) pairs exactly as they were added
//   - An edge counter equal to the number of AddEdge calls
//
// Why a plain adjacency list?
//
//   - Puzzle state spaces are built once and then only read by BFS and A*.
//   - Parallel edges and self-loops are legal and stored as-is, so the
//     neighbor order seen by a search is exactly the insertion order.
//   - Node identity is the node type's own ==, so ints, strings, or
//     canonical puzzle keys all work without adapters.
//
// Core Methods:
//
//	NewGraph(nodes ...N) *Graph[N]      // O(len(nodes))
//	AddNode(n N)                        // O(1), no-op when known
//	AddEdge(a, b N)                     // O(1) amortized
//	HasNode(n N) bool                   // O(1)
//	Neighbors(n N) []N                  // O(deg(n)), copy in insertion order
//	Nodes() []N                         // O(V)
//	NodeCount() / EdgeCount() int       // O(1)
//	Edges() []Edge[N]                   // O(E)
//	AdjacencyList() map[N][]N           // O(V+E), deep copy
//
// Text format:
//
//	ReadGraph(r) / ReadGraphFile(path) build a *Graph[int] from
//
//	    n m
//	    u1 v1
//	    ...
//	    um vm
//
//	with nodes 1..n. Any line that is not exactly two integers yields ErrFormat
//	and no graph.
//
// Concurrency:
//
//	A sync.RWMutex guards the store. Searches only take read locks, so many
//	searches may share one Graph as long as nobody calls AddEdge meanwhile.
//
// Quick ASCII example:
//
//	1───2
//	│   │
//	4───3
//
//	g := core.NewGraph(1, 2, 3, 4)
//	g.AddEdge(1, 2); g.AddEdge(2, 3); g.AddEdge(3, 4); g.AddEdge(1, 4)
package core
