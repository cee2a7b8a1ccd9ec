// Package bfs provides breadth-first shortest-path search between two nodes
// of a core.Graph, where every edge counts as one hop.
//
// What
//
//   - Finds one of the fewest-edges paths from src to dst, or reports that dst
//     is unreachable (Result.Found == false; not an error).
//   - The frontier is seeded with src's direct neighbors, and the search stops
//     the moment dst appears in a neighbor scan.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Emits debug events through a zerolog.Logger (silent by default).
//
// Source equals destination
//
//	ShortestPath(g, s, s) does not short-circuit. Since s is never put on the
//	frontier, [s] is returned only when a neighbor scan reaches s again (a
//	self-loop, or any neighbor in an undirected graph); an isolated s yields
//	no path. Pass WithTrivialPath() to always get [s].
//
// Determinism
//
//	Neighbors are scanned in insertion order, so the same graph and inputs
//	always produce the same path.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, parent, depth and visited maps)
//
// Usage
//
//	res, err := bfs.ShortestPath(g, 1, 3)
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrOptionViolation or ctx.Err()
//	}
//	if res.Found {
//	    fmt.Println(res.Path) // [1 2 3]
//	}
//
//	res, err = bfs.ShortestPath(g, 1, 3,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(4),
//	    bfs.WithLogger(logger),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrSourceNotFound   if src is not registered in the graph.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package bfs
