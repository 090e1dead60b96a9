// Package: flowbench/layered
//
// generate.go — construction of layered random flow networks.
//
// Canonical model:
//   - n = LayerSize·NLayers interior vertices, numbered 0..n-1 as NLayers
//     contiguous layers of LayerSize each; layer i occupies
//     [i·LayerSize, (i+1)·LayerSize).
//   - Every adjacent layer pair gets a shuffled positional matching of
//     LayerSize edges at capacity FlowCap, so each interior vertex has
//     in-degree ≥ 1 and out-degree ≥ 1 and at least one source-to-sink path
//     of bottleneck FlowCap exists.
//   - Extra edges per boundary are drawn uniformly from the left×right
//     cross-product (skipping pairs already present) until the boundary total
//     reaches ⌊ConnectRatio·LayerSize⌋.
//   - Super-source n feeds every vertex of layer 0; every vertex of the last
//     layer feeds super-sink n+1. Those capacities are uniform in [1, FlowCap].
//
// Contract:
//   - FlowCap ≥ 1, LayerSize ≥ 1, NLayers ≥ 2, ConnectRatio ≥ 1
//     (else ErrInvalidParameter).
//   - The extra-edge request must fit the candidate pool of
//     LayerSize² − LayerSize pairs left after the base matching
//     (else ErrInvalidParameter — the candidate shuffle would otherwise be
//     exhausted before reaching the target).
//   - Deterministic for a fixed Config and injected random source.
//
// Complexity:
//   - Time:   O(NLayers·LayerSize²) dominated by the per-boundary candidate
//     shuffle when ConnectRatio > 1; O(NLayers·LayerSize) otherwise.
//   - Memory: O(LayerSize²) transient per boundary plus the output graph.

package layered

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/flowbench/netgraph"
)

const methodGenerate = "Generate"

// Generate constructs a layered random flow network from cfg.
//
// The returned graph has LayerSize·NLayers + 2 vertices: interior vertices
// 0..n-1 followed by the super-source n and the super-sink n+1, which are the
// graph's Source and Sink.
func Generate(cfg Config, opts ...Option) (*netgraph.Graph, error) {
	// Validate structural parameters early, fail fast with the class sentinel.
	if cfg.FlowCap < 1 {
		return nil, fmt.Errorf("%s: flowCap=%d < 1: %w", methodGenerate, cfg.FlowCap, ErrInvalidParameter)
	}
	if cfg.LayerSize < 1 {
		return nil, fmt.Errorf("%s: layerSize=%d < 1: %w", methodGenerate, cfg.LayerSize, ErrInvalidParameter)
	}
	if cfg.NLayers < 2 {
		return nil, fmt.Errorf("%s: nLayers=%d < 2: no layer boundary to connect: %w",
			methodGenerate, cfg.NLayers, ErrInvalidParameter)
	}
	if cfg.ConnectRatio < 1 {
		return nil, fmt.Errorf("%s: connectRatio=%g < 1: %w", methodGenerate, cfg.ConnectRatio, ErrInvalidParameter)
	}

	// Per-boundary edge budget: total includes the mandatory base matching.
	boundaryTotal := int(math.Floor(cfg.ConnectRatio * float64(cfg.LayerSize)))
	extra := boundaryTotal - cfg.LayerSize
	pool := cfg.LayerSize*cfg.LayerSize - cfg.LayerSize
	if extra > pool {
		return nil, fmt.Errorf("%s: connectRatio=%g requests %d extra edges per boundary, pool has %d: %w",
			methodGenerate, cfg.ConnectRatio, extra, pool, ErrInvalidParameter)
	}

	gc := resolveOptions(opts...)
	rng := gc.rng

	n := cfg.LayerSize * cfg.NLayers
	g := netgraph.New(n+2, n, n+1)

	// Connect every adjacent layer pair.
	for layer := 0; layer < cfg.NLayers-1; layer++ {
		if err := connectBoundary(g, rng, cfg, layer, extra); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}

	// Attach the super-source to layer 0 and the last layer to the super-sink.
	lastBase := (cfg.NLayers - 1) * cfg.LayerSize
	for i := 0; i < cfg.LayerSize; i++ {
		if err := g.AddEdge(n, i, randCapacity(rng, cfg.FlowCap)); err != nil {
			return nil, fmt.Errorf("%s: source edge: %w", methodGenerate, err)
		}
		if err := g.AddEdge(lastBase+i, n+1, randCapacity(rng, cfg.FlowCap)); err != nil {
			return nil, fmt.Errorf("%s: sink edge: %w", methodGenerate, err)
		}
	}

	return g, nil
}

// connectBoundary wires layers `layer` and `layer+1`: the shuffled positional
// base matching at capacity FlowCap first, then `extra` distinct random pairs
// drawn from the remaining cross-product.
func connectBoundary(g *netgraph.Graph, rng *rand.Rand, cfg Config, layer, extra int) error {
	left := layerVertices(cfg.LayerSize, layer)
	right := layerVertices(cfg.LayerSize, layer+1)
	rng.Shuffle(len(left), func(i, j int) { left[i], left[j] = left[j], left[i] })
	rng.Shuffle(len(right), func(i, j int) { right[i], right[j] = right[j], right[i] })

	// Base matching: left[k] → right[k] at full capacity.
	for k := 0; k < cfg.LayerSize; k++ {
		if err := g.AddEdge(left[k], right[k], cfg.FlowCap); err != nil {
			return fmt.Errorf("boundary %d: base edge: %w", layer, err)
		}
	}
	if extra <= 0 {
		return nil
	}

	// Shuffle the full cross-product once; walking it in shuffled order and
	// skipping pairs already present draws exactly `extra` distinct edges
	// uniformly, with a hard bound instead of open-ended rejection sampling.
	candidates := make([]netgraph.EdgeKey, 0, cfg.LayerSize*cfg.LayerSize)
	for _, u := range left {
		for _, v := range right {
			candidates = append(candidates, netgraph.EdgeKey{From: u, To: v})
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	added := 0
	for _, c := range candidates {
		if added == extra {
			break
		}
		if g.HasEdge(c.From, c.To) {
			continue
		}
		if err := g.AddEdge(c.From, c.To, randCapacity(rng, cfg.FlowCap)); err != nil {
			return fmt.Errorf("boundary %d: extra edge: %w", layer, err)
		}
		added++
	}

	return nil
}

// layerVertices returns the identifiers of the given layer in ascending order.
func layerVertices(layerSize, layer int) []int {
	ids := make([]int, layerSize)
	for i := range ids {
		ids[i] = layer*layerSize + i
	}

	return ids
}

// randCapacity draws a uniform capacity in [1, flowCap].
func randCapacity(rng *rand.Rand, flowCap int64) int64 {
	return rng.Int63n(flowCap) + 1
}
