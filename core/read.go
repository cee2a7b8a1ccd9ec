package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxReadNodes bounds the node count a graph text header may declare.
const MaxReadNodes = 1 << 24

// ReadGraph parses the "n m" text format and returns a graph with nodes 1..n
// and the m listed edges. Every line must hold exactly two integers; the
// first violation aborts with ErrFormat and no graph is returned. A header
// declaring more than MaxReadNodes nodes is rejected with ErrFormat.
// Lines after the m-th edge are ignored.
//
// Complexity: O(n + m)
func ReadGraph(r io.Reader) (*Graph[int], error) {
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (int, int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, 0, fmt.Errorf("core: read line %d: %w", line+1, err)
			}
			return 0, 0, fmt.Errorf("%w: line %d: unexpected end of input", ErrFormat, line+1)
		}
		line++
		return parsePair(sc.Text(), line)
	}

	n, m, err := next()
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: line 1: negative header %d %d", ErrFormat, n, m)
	}
	if n > MaxReadNodes {
		return nil, fmt.Errorf("%w: line 1: %d nodes, at most %d", ErrFormat, n, MaxReadNodes)
	}

	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i + 1
	}
	g := NewGraph(nodes...)
	for i := 0; i < m; i++ {
		u, v, err := next()
		if err != nil {
			return nil, err
		}
		g.AddEdge(u, v)
	}

	return g, nil
}

// ReadGraphFile opens path and delegates to ReadGraph.
func ReadGraphFile(path string) (*Graph[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open graph file: %w", err)
	}
	defer f.Close()

	return ReadGraph(f)
}

// parsePair splits text into exactly two integers.
func parsePair(text string, line int) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line %d: want 2 integers, got %d fields", ErrFormat, line, len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
	}

	return a, b, nil
}
