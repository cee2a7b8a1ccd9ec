// Package swapgraph is an in-memory toolkit for shortest-path search on
// undirected graphs, and for solving the swap puzzle on top of it.
//
// 🚀 What is swapgraph?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: an undirected adjacency-list Graph over any comparable node
//		• Breadth-first search: fewest-edge paths with depth limits and cancellation
//		• A* search: best-first search over heuristic states rebuilt from identities
//		• The swap puzzle: m×n grids, canonical keys, state graphs and a solver
//
// Everything is organized under five subpackages:
//
//	core/    — Graph store, edge log, text loader
//	bfs/     — ShortestPath with functional options
//	astar/   — Search over State values, SearchFunc over plain nodes
//	puzzle/  — Grid, StateGraph, Solve
//	builder/ — deterministic fixture graphs (paths, grids, trees, random)
//
// plus the command line tool in cmd/swapgraph, configured with YAML.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	g := core.NewGraph(1, 2, 3, 4)
//	g.AddEdge(1, 2); g.AddEdge(2, 3); g.AddEdge(3, 4); g.AddEdge(1, 4)
//	res, _ := bfs.ShortestPath(g, 1, 3) // [1 2 3] or [1 4 3]
//
//	go get github.com/katalvlaran/swapgraph
package swapgraph
