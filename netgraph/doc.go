// Package netgraph provides the in-memory flow-network representation shared
// across flowbench: a directed graph with integer vertex identifiers, a
// pair-keyed capacity map, and two distinguished terminal roles.
//
// What:
//
//   - Graph stores edges keyed by their ordered (From, To) pair — at most one
//     edge per pair — alongside the declared vertex count and the Source/Sink
//     terminal identifiers.
//   - Enumeration via Edges() follows insertion order, making encoded output
//     and first-seen vertex scans deterministic within one build sequence.
//   - Reachable performs breadth-first reachability over positive-capacity
//     edges for structural sanity checks.
//
// Why:
//
//   - The layered generator, the DIMACS codec, and the relabeler all exchange
//     this one type; the insertion-order invariant is what lets the relabeler
//     reproduce its first-seen renumbering faithfully.
//
// Errors:
//
//   - ErrDuplicateEdge: an edge with the same (From, To) pair already exists.
//   - ErrNegativeCapacity: capacity below zero (zero itself is legal in transit).
//   - ErrVertexRange: negative vertex identifier.
package netgraph
