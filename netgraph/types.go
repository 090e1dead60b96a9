// Package netgraph defines the flow-network Graph type shared by the
// generator, the DIMACS codec, and the relabeler of github.com/katalvlaran/flowbench.
package netgraph

import (
	"errors"
)

// Sentinel errors for netgraph operations.
var (
	// ErrDuplicateEdge indicates an edge with the same (From, To) pair already exists.
	ErrDuplicateEdge = errors.New("netgraph: duplicate edge")
	// ErrNegativeCapacity indicates an edge capacity below zero.
	ErrNegativeCapacity = errors.New("netgraph: negative capacity")
	// ErrVertexRange indicates a negative vertex identifier.
	ErrVertexRange = errors.New("netgraph: vertex identifier out of range")
)

// EdgeKey is the ordered endpoint pair that uniquely identifies an edge.
type EdgeKey struct {
	From, To int
}

// Edge is a directed edge with an integer capacity.
//
// Capacity 0 is a legal transit value (external tooling may zero out edges);
// only the relabeler assigns it a meaning, treating such edges as absent.
type Edge struct {
	From, To int
	Capacity int64
}

// Graph is a directed flow network with two distinguished terminal vertices.
//
// Vertex identifiers are plain integers and need not be contiguous; NumVertices
// is the declared count carried in the DIMACS header, not a derived quantity.
// Edges are keyed by their (From, To) pair — at most one edge per ordered pair.
// Enumeration order is insertion order, so encoding and first-seen scans are
// deterministic for a fixed build sequence.
type Graph struct {
	// NumVertices is the declared vertex count (DIMACS "p max" header, field 3).
	NumVertices int
	// Source and Sink are the distinguished terminal vertex identifiers.
	Source, Sink int

	caps  map[EdgeKey]int64 // (From,To) → capacity
	order []EdgeKey         // insertion order of keys, drives Edges()
}

// New returns an empty Graph with the given declared vertex count and terminals.
// Complexity: O(1).
func New(numVertices, source, sink int) *Graph {
	return &Graph{
		NumVertices: numVertices,
		Source:      source,
		Sink:        sink,
		caps:        make(map[EdgeKey]int64),
	}
}
