package core

import (
	"fmt"
	"strings"
)

// String lists every node with its neighbors, one node per line, in
// registration order:
//
//	The graph has 3 nodes and 2 edges.
//	1-->[2]
//	2-->[1 3]
//	3-->[2]
//
// An empty graph prints "The graph is empty".
func (g *Graph[N]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.adjacency) == 0 {
		return "The graph is empty"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "The graph has %d nodes and %d edges.\n", len(g.nodes), g.edgeCount)
	printed := make(map[N]struct{}, len(g.adjacency))
	for _, n := range g.nodes {
		if _, dup := printed[n]; dup {
			continue
		}
		printed[n] = struct{}{}
		fmt.Fprintf(&sb, "%v-->%v\n", n, g.adjacency[n])
	}

	return sb.String()
}

// GoString returns a one-line summary, used by the %#v verb.
func (g *Graph[N]) GoString() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fmt.Sprintf("<core.Graph: nodes=%d, edges=%d>", len(g.nodes), g.edgeCount)
}
