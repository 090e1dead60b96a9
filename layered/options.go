// Package: flowbench/layered
//
// options.go — generator configuration and deterministic defaults.
//
// Design:
//   - Config carries the four structural knobs of the layered model.
//   - The random source is injected through functional options; when none is
//     supplied, Generate falls back to a time-seeded stream. Tests pin a seed
//     with WithSeed to assert exact structural outputs.

package layered

import (
	"math/rand"
	"time"
)

// Config holds the structural parameters of a layered flow network.
type Config struct {
	// FlowCap is the upper bound on any edge capacity; base matching edges
	// carry exactly FlowCap, every other capacity is uniform in [1, FlowCap].
	FlowCap int64
	// LayerSize is the number of vertices per layer (≥ 1).
	LayerSize int
	// NLayers is the number of interior layers (≥ 2).
	NLayers int
	// ConnectRatio controls the total edge count per layer boundary:
	// ⌊ConnectRatio·LayerSize⌋ edges, inclusive of the base matching (≥ 1).
	ConnectRatio float64
}

// genConfig aggregates resolved generator knobs beyond the structural Config.
type genConfig struct {
	rng *rand.Rand // nil until resolved; Generate seeds one from wall time
}

// Option adjusts non-structural generator behavior (currently the RNG).
type Option func(*genConfig)

// WithRand injects an explicit random source. Passing nil is ignored so the
// zero value keeps the time-seeded fallback.
func WithRand(r *rand.Rand) Option {
	return func(c *genConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed injects a fresh random source seeded with the given value.
// Fixing the seed makes Generate fully deterministic for equal Config inputs.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// resolveOptions applies opts in order (last wins) and fills the RNG fallback.
// Complexity: O(len(opts)).
func resolveOptions(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
