package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadGrid parses a grid in text form: the first line is "m n", followed
// by m lines of n integers each. Lines after the m-th row are ignored.
// Returns ErrFormat for malformed text and the construction errors of New
// for a shape or permutation mismatch.
func ReadGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func(want int) ([]int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("puzzle: read line %d: %w", line+1, err)
			}
			return nil, fmt.Errorf("%w: line %d: unexpected end of input", ErrFormat, line+1)
		}
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) != want {
			return nil, fmt.Errorf("%w: line %d: want %d integers, got %d fields", ErrFormat, line, want, len(fields))
		}
		out := make([]int, want)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
			}
			out[i] = v
		}
		return out, nil
	}

	dims, err := next(2)
	if err != nil {
		return nil, err
	}
	m, n := dims[0], dims[1]
	if m <= 0 || n <= 0 {
		return nil, fmt.Errorf("%w: line 1: dimensions %dx%d", ErrFormat, m, n)
	}
	// rows are appended as read, so the header alone never sizes an allocation
	var cells [][]int
	for i := 0; i < m; i++ {
		row, err := next(n)
		if err != nil {
			return nil, err
		}
		cells = append(cells, row)
	}

	return New(m, n, cells)
}

// ReadGridFile opens path and delegates to ReadGrid.
func ReadGridFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: open grid file: %w", err)
	}
	defer f.Close()

	return ReadGrid(f)
}
