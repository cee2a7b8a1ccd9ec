package core

// AddEdge inserts the undirected edge a—b.
// b is appended to a's neighbor list and a to b's; missing endpoints are
// registered first with an empty list. The pair is appended to the edge log
// and the edge count grows by one. Parallel edges and self-loops are kept.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(a, b N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.register(a)
	g.register(b)

	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edgeCount++
	g.edges = append(g.edges, Edge[N]{From: a, To: b})
}

// AddNode registers n with an empty neighbor list. Known nodes are left
// untouched, so unlike the initial list of NewGraph it never duplicates.
// Thread-safe: acquires a write lock.
func (g *Graph[N]) AddNode(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.register(n)
}

// register adds n with an empty neighbor list if it is unknown.
// Caller must hold the write lock.
func (g *Graph[N]) register(n N) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = []N{}
	g.nodes = append(g.nodes, n)
}

// HasNode reports whether n is registered.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph[N]) HasNode(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[n]
	return ok
}

// Neighbors returns a copy of n's neighbor list in insertion order.
// If n is not registered, returns nil.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the degree of n.
func (g *Graph[N]) Neighbors(n N) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[n]
	if !ok {
		return nil
	}
	out := make([]N, len(nbrs))
	copy(out, nbrs)

	return out
}

// Nodes returns the registered nodes in registration order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of registered nodes, counting duplicates of
// the initial list.
func (g *Graph[N]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of AddEdge calls.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns the edge log in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(E)
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)

	return out
}

// AdjacencyList returns a deep copy of node → neighbors.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E)
func (g *Graph[N]) AdjacencyList() map[N][]N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[N][]N, len(g.adjacency))
	for n, nbrs := range g.adjacency {
		cp := make([]N, len(nbrs))
		copy(cp, nbrs)
		out[n] = cp
	}

	return out
}
