package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core operations.
var (
	// ErrFormat indicates a graph text file that does not follow the
	// "n m" header plus m "u v" lines layout.
	ErrFormat = errors.New("core: malformed graph text")
)

// Edge is one logical undirected edge as it was passed to AddEdge.
type Edge[N comparable] struct {
	From N
	To   N
}

// Graph is an undirected adjacency-list graph over node type N.
//
// nodes keeps registration order (duplicates of the initial list included),
// adjacency maps every known node to its neighbor list in insertion order,
// edges is the AddEdge log and edgeCount its length.
type Graph[N comparable] struct {
	mu sync.RWMutex // guards everything below

	nodes     []N
	adjacency map[N][]N
	edges     []Edge[N]
	edgeCount int
}

// NewGraph creates a Graph holding the given nodes and no edges.
// The initial list is taken as-is: duplicates are not detected and count
// towards NodeCount.
// Complexity: O(len(nodes))
func NewGraph[N comparable](nodes ...N) *Graph[N] {
	g := &Graph[N]{
		nodes:     make([]N, 0, len(nodes)),
		adjacency: make(map[N][]N, len(nodes)),
	}
	for _, n := range nodes {
		g.nodes = append(g.nodes, n)
		if _, ok := g.adjacency[n]; !ok {
			g.adjacency[n] = []N{}
		}
	}

	return g
}
