package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowbench/netgraph"
)

// DecodeMatrix parses the plain adjacency-matrix text format some external
// instance collections ship alongside DIMACS files:
//
//	<n>
//	<cap(0,0)> <cap(0,1)> ... <cap(0,n-1)>
//	...
//	<cap(n-1,0)> ...          <cap(n-1,n-1)>
//
// Every strictly positive entry (i, j) becomes an edge i→j with that
// capacity. By the format's convention vertex 0 is the source and n−1 is the
// sink. Row lengths are not validated beyond being parseable, matching the
// permissive legacy reader.
//
// Complexity: O(n²) time, O(V + E) memory.
func DecodeMatrix(r io.Reader) (*netgraph.Graph, error) {
	sc := bufio.NewScanner(r)

	var (
		g   *netgraph.Graph
		row int
	)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if g == nil {
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: matrix size %q: %w", ErrMalformed, fields[0], err)
			}
			if n < 2 {
				return nil, fmt.Errorf("%w: matrix size %d < 2: no distinct source and sink", ErrMalformed, n)
			}
			g = netgraph.New(n, 0, n-1)
			continue
		}
		for col, cell := range fields {
			capacity, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: matrix cell (%d,%d) %q: %w", ErrMalformed, row, col, cell, err)
			}
			if capacity > 0 {
				if err = g.AddEdge(row, col, capacity); err != nil {
					return nil, fmt.Errorf("%w: matrix cell (%d,%d): %w", ErrMalformed, row, col, err)
				}
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: missing matrix size line", ErrMalformed)
	}

	return g, nil
}
