package netgraph

// Reachable reports whether `to` can be reached from `from` along edges with
// strictly positive capacity. Zero-capacity edges are treated as absent, the
// same convention the relabeler applies.
//
// Used as a cheap structural sanity check on generated instances: the layered
// generator's base matching guarantees Reachable(Source, Sink) for every
// well-formed output.
//
// Complexity: O(V + E) time, O(V + E) memory for the adjacency index.
func (g *Graph) Reachable(from, to int) bool {
	if from == to {
		return true
	}
	// Build a positive-capacity adjacency index once per call.
	adj := make(map[int][]int, g.NumVertices)
	for _, k := range g.order {
		if g.caps[k] > 0 {
			adj[k.From] = append(adj[k.From], k.To)
		}
	}

	visited := map[int]bool{from: true}
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if v == to {
				return true
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
