package layered_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowbench/layered"
	"github.com/katalvlaran/flowbench/netgraph"
)

// GenerateSuite groups tests for the layered generator.
type GenerateSuite struct {
	suite.Suite
}

// TestInvalidParameters rejects every out-of-domain Config with the class sentinel.
func (s *GenerateSuite) TestInvalidParameters() {
	cases := []struct {
		name string
		cfg  layered.Config
	}{
		{"FlowCapZero", layered.Config{FlowCap: 0, LayerSize: 2, NLayers: 2, ConnectRatio: 1}},
		{"LayerSizeZero", layered.Config{FlowCap: 5, LayerSize: 0, NLayers: 2, ConnectRatio: 1}},
		{"SingleLayer", layered.Config{FlowCap: 5, LayerSize: 2, NLayers: 1, ConnectRatio: 1}},
		{"RatioBelowOne", layered.Config{FlowCap: 5, LayerSize: 2, NLayers: 2, ConnectRatio: 0.5}},
		// layerSize=2 leaves a pool of 2²−2 = 2 extra pairs per boundary;
		// ratio 3 requests ⌊3·2⌋−2 = 4 and must be refused, not spun on.
		{"PoolExhausted", layered.Config{FlowCap: 5, LayerSize: 2, NLayers: 2, ConnectRatio: 3}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := layered.Generate(tc.cfg, layered.WithSeed(1))
			require.True(s.T(), errors.Is(err, layered.ErrInvalidParameter),
				"Generate(%+v) error = %v; want ErrInvalidParameter", tc.cfg, err)
		})
	}
}

// TestSmallScenario pins the smallest interesting instance:
// flowCap=10, layerSize=2, nLayers=2, connectRatio=1 ⇒ 6 vertices, 6 edges,
// source 4, sink 5.
func (s *GenerateSuite) TestSmallScenario() {
	g, err := layered.Generate(
		layered.Config{FlowCap: 10, LayerSize: 2, NLayers: 2, ConnectRatio: 1},
		layered.WithSeed(42),
	)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 6, g.NumVertices, "layerSize·nLayers + 2 vertices")
	require.Equal(s.T(), 6, g.NumEdges(), "1 boundary matching + 2·layerSize terminal edges")
	require.Equal(s.T(), 4, g.Source)
	require.Equal(s.T(), 5, g.Sink)
	require.True(s.T(), g.Reachable(g.Source, g.Sink), "base matching guarantees a path")
}

// TestStructuralInvariants checks the complete structural shape of a denser instance.
func (s *GenerateSuite) TestStructuralInvariants() {
	cfg := layered.Config{FlowCap: 7, LayerSize: 3, NLayers: 4, ConnectRatio: 2}
	g, err := layered.Generate(cfg, layered.WithSeed(7))
	require.NoError(s.T(), err)

	n := cfg.LayerSize * cfg.NLayers
	require.Equal(s.T(), n+2, g.NumVertices)
	require.Equal(s.T(), n, g.Source)
	require.Equal(s.T(), n+1, g.Sink)

	boundaryTotal := int(math.Floor(cfg.ConnectRatio * float64(cfg.LayerSize)))
	wantEdges := (cfg.NLayers-1)*boundaryTotal + 2*cfg.LayerSize
	require.Equal(s.T(), wantEdges, g.NumEdges())

	lastBase := (cfg.NLayers - 1) * cfg.LayerSize
	seen := make(map[netgraph.EdgeKey]bool, g.NumEdges())
	for _, e := range g.Edges() {
		require.False(s.T(), seen[netgraph.EdgeKey{From: e.From, To: e.To}],
			"duplicate edge %d→%d", e.From, e.To)
		seen[netgraph.EdgeKey{From: e.From, To: e.To}] = true

		require.GreaterOrEqual(s.T(), e.Capacity, int64(1))
		require.LessOrEqual(s.T(), e.Capacity, cfg.FlowCap)

		switch {
		case e.From == g.Source:
			require.Less(s.T(), e.To, cfg.LayerSize, "source feeds layer 0 only")
		case e.To == g.Sink:
			require.GreaterOrEqual(s.T(), e.From, lastBase, "sink is fed by the last layer only")
		default:
			// Interior edge: must cross exactly one layer boundary forward.
			require.Equal(s.T(), e.From/cfg.LayerSize+1, e.To/cfg.LayerSize,
				"edge %d→%d does not connect adjacent layers", e.From, e.To)
		}
		require.NotEqual(s.T(), g.Sink, e.From, "sink has no out-edges")
		require.NotEqual(s.T(), g.Source, e.To, "source has no in-edges")
	}

	require.True(s.T(), g.Reachable(g.Source, g.Sink))
}

// TestBaseMatchingCapacity confirms uniform base edges: with connectRatio=1
// every interior edge carries exactly FlowCap.
func (s *GenerateSuite) TestBaseMatchingCapacity() {
	cfg := layered.Config{FlowCap: 9, LayerSize: 4, NLayers: 3, ConnectRatio: 1}
	g, err := layered.Generate(cfg, layered.WithSeed(3))
	require.NoError(s.T(), err)

	for _, e := range g.Edges() {
		if e.From == g.Source || e.To == g.Sink {
			continue
		}
		require.Equal(s.T(), cfg.FlowCap, e.Capacity,
			"base matching edge %d→%d must carry FlowCap", e.From, e.To)
	}
}

// TestDeterminism verifies identical output for identical seed and Config.
func (s *GenerateSuite) TestDeterminism() {
	cfg := layered.Config{FlowCap: 11, LayerSize: 3, NLayers: 3, ConnectRatio: 2}
	a, err := layered.Generate(cfg, layered.WithSeed(99))
	require.NoError(s.T(), err)
	b, err := layered.Generate(cfg, layered.WithSeed(99))
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.Edges(), b.Edges(), "same seed must reproduce the instance exactly")
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}
