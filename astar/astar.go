// Package astar implements best-first (A*) search over a core.Graph whose
// nodes are canonical identities of puzzle states.
package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/swapgraph/core"
)

// Search finds a path from src to dst, expanding states in order of
// cost-so-far plus estimated distance to dst.
//
// Every edge costs one move. A node popped from the open list is closed and
// expanded; if it was already closed, it is re-expanded only when the new
// estimate is strictly lower than the closed one, otherwise dropped.
// Neighbor states are rebuilt from their identities with from.
//
// An exhausted open list is reported as Result.Found == false with a nil
// error. Returns ErrGraphNil, ErrNilFactory, ErrSourceNotFound,
// ErrOptionViolation, ErrNegativeHeuristic, a wrapped ErrFactory,
// ErrExpansionLimit or a context error otherwise.
//
// Complexity: O((V + E) log E) heap work per expansion round; with a
// consistent heuristic each node is expanded once.
func Search[N comparable, S State[N, S]](g *core.Graph[N], src, dst S, from Factory[N, S], opts ...Option) (Result[N], error) {
	if g == nil {
		return Result[N]{Cost: -1}, ErrGraphNil
	}
	if from == nil {
		return Result[N]{Cost: -1}, ErrNilFactory
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[N]{Cost: -1}, o.err
	}
	srcID := src.Identity()
	if !g.HasNode(srcID) {
		return Result[N]{Cost: -1}, ErrSourceNotFound
	}

	r := &runner[N, S]{
		g:      g,
		opts:   o,
		ctx:    o.Ctx,
		goal:   dst,
		goalID: dst.Identity(),
		from:   from,
		open:   make(frontier[N], 0, 16),
		closed: make(map[N]*entry[N]),
		log:    o.Logger.With().Interface("src", srcID).Interface("dst", dst.Identity()).Logger(),
	}
	h, err := r.estimate(src)
	if err != nil {
		return Result[N]{Cost: -1}, err
	}
	r.push(&entry[N]{id: srcID, cost: 0, estimate: h})

	res, err := r.process()
	if err != nil {
		r.log.Debug().Err(err).Int("expanded", r.expanded).Msg("astar: search aborted")
		return Result[N]{Cost: -1, Expanded: r.expanded}, err
	}
	r.log.Debug().
		Bool("found", res.Found).
		Int("cost", res.Cost).
		Int("expanded", res.Expanded).
		Msg("astar: search finished")

	return res, nil
}

// SearchFunc runs Search on plain nodes, using h as the distance estimate.
// A nil h is replaced by Zero.
func SearchFunc[N comparable](g *core.Graph[N], src, dst N, h Heuristic[N], opts ...Option) (Result[N], error) {
	if h == nil {
		h = Zero[N]
	}
	mk := func(id N) (nodeState[N], error) { return nodeState[N]{id: id, h: h}, nil }

	return Search[N, nodeState[N]](g, nodeState[N]{id: src, h: h}, nodeState[N]{id: dst, h: h}, mk, opts...)
}

// nodeState adapts a plain node and a Heuristic to the State interface.
type nodeState[N comparable] struct {
	id N
	h  Heuristic[N]
}

func (s nodeState[N]) Identity() N { return s.id }

func (s nodeState[N]) DistanceTo(goal nodeState[N], _ *core.Graph[N]) float64 {
	return s.h(s.id, goal.id)
}

// runner holds the mutable state for a single search.
type runner[N comparable, S State[N, S]] struct {
	g        *core.Graph[N]
	opts     Options
	ctx      context.Context
	goal     S
	goalID   N
	from     Factory[N, S]
	open     frontier[N]
	closed   map[N]*entry[N]
	seq      uint64
	expanded int
	log      zerolog.Logger
}

// process pops the best open entry until the goal is reached or open is empty.
func (r *runner[N, S]) process() (Result[N], error) {
	for r.open.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return Result[N]{}, r.ctx.Err()
		default:
		}

		e := heap.Pop(&r.open).(*entry[N])
		if e.id == r.goalID {
			path := r.reconstruct(e)
			return Result[N]{
				Path:     path,
				Found:    true,
				Cost:     len(path) - 1,
				Expanded: r.expanded,
			}, nil
		}

		if prev, ok := r.closed[e.id]; ok && !(e.estimate < prev.estimate) {
			continue
		}
		r.closed[e.id] = e
		if err := r.expand(e); err != nil {
			return Result[N]{}, err
		}
	}

	return Result[N]{Cost: -1, Expanded: r.expanded}, nil
}

// expand pushes every neighbor of e one move further, with e as parent.
func (r *runner[N, S]) expand(e *entry[N]) error {
	r.expanded++
	if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
	}

	for _, id := range r.g.Neighbors(e.id) {
		st, err := r.from(id)
		if err != nil {
			return fmt.Errorf("%w: %v: %w", ErrFactory, id, err)
		}
		h, err := r.estimate(st)
		if err != nil {
			return err
		}
		cost := e.cost + 1
		r.push(&entry[N]{
			id:        id,
			cost:      cost,
			estimate:  float64(cost) + h,
			parent:    e.id,
			hasParent: true,
		})
	}

	return nil
}

// estimate asks st for its distance to the goal and validates it.
func (r *runner[N, S]) estimate(st S) (float64, error) {
	h := st.DistanceTo(r.goal, r.g)
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: %v estimates %v", ErrNegativeHeuristic, st.Identity(), h)
	}

	return h, nil
}

// push stamps e with the next sequence number and adds it to open.
func (r *runner[N, S]) push(e *entry[N]) {
	e.seq = r.seq
	r.seq++
	heap.Push(&r.open, e)
}

// reconstruct follows parent identities through the closed list back to the
// source and returns the path source-first.
func (r *runner[N, S]) reconstruct(goal *entry[N]) []N {
	path := []N{goal.id}
	for cur := goal; cur.hasParent; {
		next, ok := r.closed[cur.parent]
		if !ok {
			break
		}
		path = append(path, next.id)
		cur = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
