package puzzle_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swapgraph/astar"
	"github.com/katalvlaran/swapgraph/puzzle"
)

// shuffled returns a random m×n grid drawn from rng.
func shuffled(t testing.TB, rng *rand.Rand, m, n int) *puzzle.Grid {
	t.Helper()
	perm := rng.Perm(m * n)
	cells := make([][]int, m)
	for i := range cells {
		cells[i] = make([]int, n)
		for j := range cells[i] {
			cells[i][j] = perm[i*n+j] + 1
		}
	}

	return mustGrid(t, m, n, cells)
}

// replay applies sol.Swaps to a copy of start and returns the result.
func replay(t testing.TB, start *puzzle.Grid, sol puzzle.Solution) *puzzle.Grid {
	t.Helper()
	g := start.Clone()
	require.NoError(t, g.SwapSeq(sol.Swaps))

	return g
}

func TestSolve_Reversed2x2(t *testing.T) {
	start := mustGrid(t, 2, 2, [][]int{{4, 3}, {2, 1}})
	goal, err := puzzle.Sorted(2, 2)
	require.NoError(t, err)

	for _, s := range []puzzle.Strategy{puzzle.AStar, puzzle.BFS} {
		t.Run(s.String(), func(t *testing.T) {
			sol, err := puzzle.Solve(start, goal, puzzle.WithStrategy(s))
			require.NoError(t, err)
			require.True(t, sol.Found)
			assert.Len(t, sol.Swaps, 4)
			assert.Len(t, sol.Path, 5)
			assert.Equal(t, start.Identity(), sol.Path[0])
			assert.Equal(t, goal.Identity(), sol.Path[len(sol.Path)-1])
			assert.Equal(t, 24, sol.States)
			assert.True(t, replay(t, start, sol).IsSorted())
		})
	}
}

func TestSolve_OneSwap(t *testing.T) {
	start := mustGrid(t, 2, 2, [][]int{{1, 2}, {4, 3}})
	goal, err := puzzle.Sorted(2, 2)
	require.NoError(t, err)

	sol, err := puzzle.Solve(start, goal)
	require.NoError(t, err)
	require.True(t, sol.Found)
	assert.Equal(t, []puzzle.Swap{{A: puzzle.Cell{Row: 1, Col: 0}, B: puzzle.Cell{Row: 1, Col: 1}}}, sol.Swaps)
}

func TestSolve_AlreadySolved(t *testing.T) {
	goal, err := puzzle.Sorted(2, 2)
	require.NoError(t, err)

	for _, s := range []puzzle.Strategy{puzzle.AStar, puzzle.BFS} {
		sol, err := puzzle.Solve(goal.Clone(), goal, puzzle.WithStrategy(s))
		require.NoError(t, err, s.String())
		assert.True(t, sol.Found, s.String())
		assert.Equal(t, []puzzle.Key{goal.Identity()}, sol.Path, s.String())
		assert.Empty(t, sol.Swaps, s.String())
	}
}

func TestSolve_AStarMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	goal, err := puzzle.Sorted(2, 3)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		start := shuffled(t, rng, 2, 3)
		a, err := puzzle.Solve(start, goal, puzzle.WithStrategy(puzzle.AStar))
		require.NoError(t, err)
		b, err := puzzle.Solve(start, goal, puzzle.WithStrategy(puzzle.BFS))
		require.NoError(t, err)

		require.True(t, a.Found)
		require.True(t, b.Found)
		assert.Equal(t, len(b.Swaps), len(a.Swaps), "start %s", start.Identity())
		assert.LessOrEqual(t, a.Expanded, 720)
		assert.True(t, replay(t, start, a).IsSorted())
		assert.True(t, replay(t, start, b).IsSorted())
	}
}

func TestSolve_ArbitraryGoal(t *testing.T) {
	start, err := puzzle.Sorted(1, 4)
	require.NoError(t, err)
	goal := mustGrid(t, 1, 4, [][]int{{4, 3, 2, 1}})

	sol, err := puzzle.Solve(start, goal)
	require.NoError(t, err)
	require.True(t, sol.Found)
	assert.Len(t, sol.Swaps, 6) // inversions of a reversed row of four
	assert.Equal(t, goal.Identity(), replay(t, start, sol).Identity())
}

func TestSolve_Errors(t *testing.T) {
	a, err := puzzle.Sorted(2, 2)
	require.NoError(t, err)
	b, err := puzzle.Sorted(1, 4)
	require.NoError(t, err)

	_, err = puzzle.Solve(a, b)
	require.ErrorIs(t, err, puzzle.ErrDimensions)

	_, err = puzzle.Solve(nil, a)
	require.ErrorIs(t, err, puzzle.ErrEmptyGrid)

	_, err = puzzle.Solve(a, a, puzzle.WithStrategy(puzzle.Strategy(9)))
	require.ErrorIs(t, err, puzzle.ErrUnknownStrategy)

	start := mustGrid(t, 2, 2, [][]int{{4, 3}, {2, 1}})
	_, err = puzzle.Solve(start, a, puzzle.WithStateLimit(5))
	require.ErrorIs(t, err, puzzle.ErrTooLarge)

	_, err = puzzle.Solve(start, a, puzzle.WithMaxExpansions(1))
	require.ErrorIs(t, err, astar.ErrExpansionLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = puzzle.Solve(start, a, puzzle.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
