package astar

// entry is one open or closed record: a node reached with cost moves and an
// estimated total of estimate, discovered from parent (none for the source).
type entry[N comparable] struct {
	id        N
	cost      int
	estimate  float64
	parent    N
	hasParent bool
	seq       uint64 // push order, breaks estimate ties first-in first-out
	index     int    // position in the heap
}

// frontier is a min-heap of *entry ordered by estimate, then by seq.
type frontier[N comparable] []*entry[N]

// Len returns the number of items in the heap.
func (f frontier[N]) Len() int { return len(f) }

// Less orders by lower estimate, earlier push on ties.
func (f frontier[N]) Less(i, j int) bool {
	if f[i].estimate != f[j].estimate {
		return f[i].estimate < f[j].estimate
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier[N]) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *entry[N].
func (f *frontier[N]) Push(x any) {
	e := x.(*entry[N])
	e.index = len(*f)
	*f = append(*f, e)
}

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum there.
func (f *frontier[N]) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return e
}
