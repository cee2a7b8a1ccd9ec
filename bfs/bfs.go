// Package bfs provides breadth-first shortest-path search over a core.Graph.
package bfs

import (
	"context"

	"github.com/katalvlaran/swapgraph/core"
)

// walker encapsulates mutable BFS state for one search.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options
	ctx     context.Context
	src     N
	dst     N
	queue   []N
	visited map[N]bool
	queued  map[N]bool
	parent  map[N]N
	depth   map[N]int
	res     *Result[N]
}

// ShortestPath finds a fewest-edges path from src to dst.
//
// The frontier is seeded with src's direct neighbors rather than src itself,
// and dst is recognised when it shows up in a neighbor scan. As a result
// ShortestPath(g, s, s) is not special-cased: it returns [s] only if the scan
// closes back on s (a self-loop, or any neighbor of s in an undirected graph),
// and no path for an isolated s. WithTrivialPath overrides this.
//
// An unreachable dst is reported as Result.Found == false with a nil error.
// Returns ErrGraphNil, ErrSourceNotFound, ErrOptionViolation or a context
// error otherwise.
func ShortestPath[N comparable](g *core.Graph[N], src, dst N, opts ...Option) (Result[N], error) {
	if g == nil {
		return Result[N]{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[N]{}, o.err
	}
	if !g.HasNode(src) {
		return Result[N]{}, ErrSourceNotFound
	}

	log := o.Logger.With().Interface("src", src).Interface("dst", dst).Logger()
	if o.TrivialPath && src == dst {
		log.Debug().Msg("bfs: trivial path")
		return Result[N]{Path: []N{src}, Found: true}, nil
	}

	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		src:     src,
		dst:     dst,
		visited: map[N]bool{src: true},
		queued:  make(map[N]bool),
		parent:  make(map[N]N),
		depth:   map[N]int{src: 0},
		res:     &Result[N]{},
	}

	found, err := w.run()
	if err != nil {
		log.Debug().Err(err).Msg("bfs: search aborted")
		return Result[N]{}, err
	}
	if found {
		w.res.Found = true
		w.res.Path = w.reconstruct()
	}
	log.Debug().
		Bool("found", w.res.Found).
		Int("visited", w.res.Visited).
		Int("hops", w.res.Hops()).
		Msg("bfs: search finished")

	return *w.res, nil
}

// run seeds the frontier and drains it, reporting whether dst was reached.
func (w *walker[N]) run() (bool, error) {
	w.seed()
	// dst among the direct neighbors: one hop, nothing shorter exists
	if w.queued[w.dst] {
		return true, nil
	}

	return w.loop()
}

// seed enqueues the direct neighbors of src with src as their parent.
func (w *walker[N]) seed() {
	for _, nbr := range w.graph.Neighbors(w.src) {
		if w.queued[nbr] {
			continue
		}
		w.enqueue(nbr, w.src, 1)
	}
}

// enqueue records id's parent and depth and appends it to the frontier.
func (w *walker[N]) enqueue(id, parent N, d int) {
	w.queued[id] = true
	w.parent[id] = parent
	w.depth[id] = d
	w.queue = append(w.queue, id)
}

// loop processes the frontier until dst is seen, the frontier empties,
// or the context is cancelled.
func (w *walker[N]) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.visited[cur] = true
		w.res.Visited++

		d := w.depth[cur]
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(cur) {
			if nbr == w.dst {
				w.parent[w.dst] = cur
				return true, nil
			}
			if w.visited[nbr] || w.queued[nbr] {
				continue
			}
			w.enqueue(nbr, cur, d+1)
		}
	}

	return false, nil
}

// reconstruct walks parent links back from dst to src and returns the path
// root-first.
func (w *walker[N]) reconstruct() []N {
	path := []N{w.dst}
	for cur := w.dst; cur != w.src; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
