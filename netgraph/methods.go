package netgraph

import "fmt"

// AddEdge inserts a directed edge u→v with the given capacity.
// Returns ErrVertexRange for negative endpoints, ErrNegativeCapacity for
// capacity < 0, and ErrDuplicateEdge if the (u, v) pair is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, capacity int64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrVertexRange)
	}
	if capacity < 0 {
		return fmt.Errorf("AddEdge(%d→%d): capacity=%d: %w", u, v, capacity, ErrNegativeCapacity)
	}
	k := EdgeKey{From: u, To: v}
	if _, ok := g.caps[k]; ok {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrDuplicateEdge)
	}
	g.caps[k] = capacity
	g.order = append(g.order, k)

	return nil
}

// Capacity reports the capacity of edge u→v and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Capacity(u, v int) (int64, bool) {
	c, ok := g.caps[EdgeKey{From: u, To: v}]
	return c, ok
}

// HasEdge reports whether the edge u→v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.caps[EdgeKey{From: u, To: v}]
	return ok
}

// NumEdges returns the number of edges currently stored.
// The declared DIMACS edge count is always derived from this value, so the
// header can never disagree with the edge list the codec emits.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.caps)
}

// Edges returns a fresh slice of all edges in insertion order.
// The order is part of the contract: the relabeler's first-seen numbering and
// the codec's deterministic output both build on it.
// Complexity: O(E) time and memory.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, Edge{From: k.From, To: k.To, Capacity: g.caps[k]})
	}

	return out
}

// Clone returns a deep copy of g, preserving insertion order.
// Complexity: O(E) time and memory.
func (g *Graph) Clone() *Graph {
	c := New(g.NumVertices, g.Source, g.Sink)
	c.order = make([]EdgeKey, len(g.order))
	copy(c.order, g.order)
	for k, capUV := range g.caps {
		c.caps[k] = capUV
	}

	return c
}
