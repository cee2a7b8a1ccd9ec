package astar_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swapgraph/astar"
	"github.com/katalvlaran/swapgraph/bfs"
	"github.com/katalvlaran/swapgraph/builder"
	"github.com/katalvlaran/swapgraph/core"
)

// table returns a heuristic backed by a lookup table (missing → 0).
func table(h map[string]float64) astar.Heuristic[string] {
	return func(from, _ string) float64 { return h[from] }
}

// buildGrid returns a w×h 4-connected grid with the given blocked cells removed.
func buildGrid(w, h int, blocked map[[2]int]bool) *core.Graph[[2]int] {
	g := core.NewGraph[[2]int]()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			u := [2]int{x, y}
			if blocked[u] {
				continue
			}
			if v := [2]int{x + 1, y}; x+1 < w && !blocked[v] {
				g.AddEdge(u, v)
			}
			if v := [2]int{x, y + 1}; y+1 < h && !blocked[v] {
				g.AddEdge(u, v)
			}
		}
	}

	return g
}

func manhattan(a, b [2]int) float64 {
	return math.Abs(float64(a[0]-b[0])) + math.Abs(float64(a[1]-b[1]))
}

func assertValidPath[N comparable](t *testing.T, g *core.Graph[N], path []N, src, dst N) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, src, path[0])
	assert.Equal(t, dst, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Contains(t, g.Neighbors(path[i-1]), path[i])
	}
}

func TestSearch_Errors(t *testing.T) {
	_, err := astar.SearchFunc[int](nil, 1, 2, nil)
	assert.ErrorIs(t, err, astar.ErrGraphNil)

	g := core.NewGraph(1, 2)
	g.AddEdge(1, 2)
	_, err = astar.SearchFunc(g, 9, 2, nil)
	assert.ErrorIs(t, err, astar.ErrSourceNotFound)

	_, err = astar.SearchFunc(g, 1, 2, nil, astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.SearchFunc(g, 1, 2, func(int, int) float64 { return -1 })
	assert.ErrorIs(t, err, astar.ErrNegativeHeuristic)

	_, err = astar.SearchFunc(g, 1, 2, func(int, int) float64 { return math.NaN() })
	assert.ErrorIs(t, err, astar.ErrNegativeHeuristic)
}

func TestSearch_Square(t *testing.T) {
	g := core.NewGraph(1, 2, 3, 4)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(1, 4)

	res, err := astar.SearchFunc(g, 1, 3, nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Contains(t, [][]int{{1, 2, 3}, {1, 4, 3}}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

func TestSearch_SourceIsDestination(t *testing.T) {
	g := core.NewGraph(1)
	res, err := astar.SearchFunc(g, 1, 1, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1}, res.Path)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 0, res.Expanded)
}

func TestSearch_Unreachable(t *testing.T) {
	g := core.NewGraph(1, 2, 3, 4)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	res, err := astar.SearchFunc(g, 1, 4, nil)
	require.NoError(t, err, "exhausting the state space is a result, not an error")
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, -1, res.Cost)
	assert.Equal(t, 2, res.Expanded)
}

// TestSearch_ReopensClosedNode drives C into closed through the long branch
// S–B–D–C first, then reaches it again from A with a strictly better estimate.
func TestSearch_ReopensClosedNode(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("S", "A")
	g.AddEdge("S", "B")
	g.AddEdge("B", "D")
	g.AddEdge("D", "C")
	g.AddEdge("A", "C")
	g.AddEdge("C", "X")
	g.AddEdge("X", "G")

	res, err := astar.SearchFunc(g, "S", "G", table(map[string]float64{"A": 3}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"S", "A", "C", "X", "G"}, res.Path)
	assert.Equal(t, 4, res.Cost)
	assert.Equal(t, 7, res.Expanded, "C is expanded twice")
}

// TestSearch_InadmissibleStillTerminates accepts a longer path when the
// heuristic overestimates.
func TestSearch_InadmissibleStillTerminates(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("S", "A")
	g.AddEdge("S", "B")
	g.AddEdge("B", "D")
	g.AddEdge("D", "C")
	g.AddEdge("A", "C")
	g.AddEdge("C", "G")

	res, err := astar.SearchFunc(g, "S", "G", table(map[string]float64{"A": 10}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assertValidPath(t, g, res.Path, "S", "G")
	assert.Equal(t, []string{"S", "B", "D", "C", "G"}, res.Path)
	assert.GreaterOrEqual(t, res.Cost, 3)
}

func TestSearch_MaxExpansions(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 20; i++ {
		g.AddEdge(i, i+1)
	}
	_, err := astar.SearchFunc(g, 0, 20, nil, astar.WithMaxExpansions(5))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)

	res, err := astar.SearchFunc(g, 0, 20, nil, astar.WithMaxExpansions(20))
	require.NoError(t, err)
	assert.Equal(t, 20, res.Cost)
}

func TestSearch_Cancellation(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 100; i++ {
		g.AddEdge(i, i+1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.SearchFunc(g, 0, 100, nil, astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// failingState always fails to rebuild neighbors.
type failingState struct{ id int }

func (s failingState) Identity() int                                         { return s.id }
func (s failingState) DistanceTo(_ failingState, _ *core.Graph[int]) float64 { return 0 }

func TestSearch_FactoryError(t *testing.T) {
	g := core.NewGraph(1, 2)
	g.AddEdge(1, 2)
	boom := errors.New("boom")

	_, err := astar.Search(g, failingState{1}, failingState{2}, func(int) (failingState, error) {
		return failingState{}, boom
	})
	assert.ErrorIs(t, err, astar.ErrFactory)
	assert.ErrorIs(t, err, boom)

	_, err = astar.Search[int, failingState](g, failingState{1}, failingState{2}, nil)
	assert.ErrorIs(t, err, astar.ErrNilFactory)
}

// TestSearch_MatchesBFS_ZeroHeuristic checks the uniform-cost degenerate case
// against BFS on random graphs.
func TestSearch_MatchesBFS_ZeroHeuristic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		n := 2 + rng.Intn(20)
		g, err := builder.Build([]builder.Option{builder.WithRand(rng)}, builder.RandomEdges(n, n+rng.Intn(n)))
		require.NoError(t, err)
		src := rng.Intn(n)
		for dst := 0; dst < n; dst++ {
			if dst == src {
				continue
			}
			want, err := bfs.ShortestPath(g, src, dst)
			require.NoError(t, err)
			got, err := astar.SearchFunc(g, src, dst, astar.Zero[int])
			require.NoError(t, err)

			require.Equal(t, want.Found, got.Found, "round %d: %d→%d", round, src, dst)
			if want.Found {
				assertValidPath(t, g, got.Path, src, dst)
				assert.Equal(t, want.Hops(), got.Cost, "round %d: %d→%d", round, src, dst)
			}
		}
	}
}

// TestSearch_MatchesBFS_Manhattan checks an admissible, consistent heuristic
// on grids with random walls.
func TestSearch_MatchesBFS_Manhattan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 20; round++ {
		w, h := 3+rng.Intn(6), 3+rng.Intn(6)
		blocked := map[[2]int]bool{}
		for i := 0; i < (w*h)/4; i++ {
			blocked[[2]int{rng.Intn(w), rng.Intn(h)}] = true
		}
		src, dst := [2]int{0, 0}, [2]int{w - 1, h - 1}
		delete(blocked, src)
		delete(blocked, dst)
		g := buildGrid(w, h, blocked)
		if !g.HasNode(src) {
			continue
		}

		want, err := bfs.ShortestPath(g, src, dst)
		require.NoError(t, err)
		got, err := astar.SearchFunc(g, src, dst, manhattan)
		require.NoError(t, err)

		require.Equal(t, want.Found, got.Found, "round %d", round)
		if want.Found {
			assertValidPath(t, g, got.Path, src, dst)
			assert.Equal(t, want.Hops(), got.Cost, "round %d", round)
		}
	}
}
