package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swapgraph/core"
	"github.com/katalvlaran/swapgraph/internal/config"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestPathCmd(t *testing.T) {
	graph := writeFile(t, "graph.in", "5 4\n1 2\n2 3\n3 4\n1 4\n")

	out, err := run(t, "path", graph, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "[1 2]\n", out)

	out, err = run(t, "path", "--strategy", "astar", graph, "2", "4")
	require.NoError(t, err)
	assert.Contains(t, []string{"[2 1 4]\n", "[2 3 4]\n"}, out)

	out, err = run(t, "path", graph, "1", "5")
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)

	out, err = run(t, "path", "--summary", graph, "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "The graph has 5 nodes and 4 edges.\n")
}

func TestPathCmd_Errors(t *testing.T) {
	graph := writeFile(t, "graph.in", "2 1\n1 2\n")

	_, err := run(t, "path", graph, "x", "2")
	require.Error(t, err)
	_, err = run(t, "path", graph, "9", "2")
	require.Error(t, err)
	_, err = run(t, "path", graph, "1")
	require.Error(t, err)
	_, err = run(t, "path", writeFile(t, "bad.in", "2 1\n1\n"), "1", "2")
	require.Error(t, err)
	_, err = run(t, "path", writeFile(t, "huge.in", "9223372036854775807 0\n"), "1", "2")
	require.ErrorIs(t, err, core.ErrFormat)
}

func TestPathCmd_MaxDepthNeedsBFS(t *testing.T) {
	graph := writeFile(t, "graph.in", "3 2\n1 2\n2 3\n")

	_, err := run(t, "path", "--strategy", "astar", "--max-depth", "1", graph, "1", "3")
	require.ErrorIs(t, err, errDepthWithAStar)

	out, err := run(t, "path", "--max-depth", "1", graph, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)
}

func TestSolveCmd_Grid(t *testing.T) {
	grid := writeFile(t, "grid.in", "2 2\n1 2\n4 3\n")

	for _, s := range []string{"astar", "bfs"} {
		out, err := run(t, "solve", "--grid", grid, "--strategy", s)
		require.NoError(t, err, s)
		assert.Equal(t, "1 swaps\n(1,0)<->(1,1)\n[1 2]\n[3 4]\n", out, s)
	}
}

func TestSolveCmd_ManyGrids(t *testing.T) {
	a := writeFile(t, "a.in", "1 2\n2 1\n")
	b := writeFile(t, "b.in", "1 3\n1 2 3\n")

	out, err := run(t, "solve", "--grid", a, "--grid", b)
	require.NoError(t, err)
	assert.Equal(t, "== "+a+"\n1 swaps\n(0,0)<->(0,1)\n[1 2]\n== "+b+"\n0 swaps\n[1 2 3]\n", out)
}

func TestSolveCmd_Config(t *testing.T) {
	cfg := writeFile(t, "run.yaml", `
puzzle:
  start: [[1, 2, 3, 4]]
  goal: [[2, 1, 3, 4]]
strategy: bfs
log_level: debug
`)
	out, err := run(t, "solve", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1 swaps\n(0,0)<->(0,1)\n[2 1 3 4]\n", out)
}

func TestSolveCmd_StrategyFlagKeepsLoadedConfig(t *testing.T) {
	a := &app{cfg: config.Default(), log: zerolog.Nop()}
	cmd := newSolveCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--grid", writeFile(t, "grid.in", "1 2\n2 1\n"), "--strategy", "bfs"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1 swaps\n(0,0)<->(0,1)\n[1 2]\n", out.String())
	assert.Equal(t, "astar", a.cfg.Strategy)
}

func TestSolveCmd_Errors(t *testing.T) {
	_, err := run(t, "solve")
	require.ErrorIs(t, err, errNoStart)

	grid := writeFile(t, "grid.in", "1 2\n2 1\n")
	_, err = run(t, "solve", "--grid", grid, "--strategy", "dfs")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "--log-level", "loud", "solve", "--grid", grid)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
