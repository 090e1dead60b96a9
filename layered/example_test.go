package layered_test

import (
	"fmt"

	"github.com/katalvlaran/flowbench/layered"
)

// ExampleGenerate builds a tiny reproducible instance: two layers of two
// vertices, one boundary matching, and four terminal edges.
func ExampleGenerate() {
	g, err := layered.Generate(
		layered.Config{FlowCap: 10, LayerSize: 2, NLayers: 2, ConnectRatio: 1},
		layered.WithSeed(42),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vertices=%d edges=%d source=%d sink=%d\n",
		g.NumVertices, g.NumEdges(), g.Source, g.Sink)
	// Output:
	// vertices=6 edges=6 source=4 sink=5
}
