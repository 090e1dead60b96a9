package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/flowbench/netgraph"
)

// Encode writes g to w in the DIMACS "max" format:
//
//	p max <vertexCount> <edgeCount>
//	n <source> s
//	n <sink> t
//	a <u> <v> <capacity>
//
// Edge lines follow the graph's insertion order, so output is deterministic
// for a fixed build sequence. Lines are streamed through a buffered writer;
// peak memory stays proportional to a single line, not to the output text.
//
// The declared counts come straight from the graph (NumVertices and
// NumEdges), so header and body cannot disagree.
//
// Complexity: O(E) time, O(1) extra memory.
func Encode(g *netgraph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p max %d %d\n", g.NumVertices, g.NumEdges()); err != nil {
		return fmt.Errorf("dimacs: encode header: %w", err)
	}
	if _, err := fmt.Fprintf(bw, "n %d s\n", g.Source); err != nil {
		return fmt.Errorf("dimacs: encode source line: %w", err)
	}
	if _, err := fmt.Fprintf(bw, "n %d t\n", g.Sink); err != nil {
		return fmt.Errorf("dimacs: encode sink line: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "a %d %d %d\n", e.From, e.To, e.Capacity); err != nil {
			return fmt.Errorf("dimacs: encode edge %d→%d: %w", e.From, e.To, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dimacs: flush: %w", err)
	}

	return nil
}
