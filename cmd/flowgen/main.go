// Command flowgen generates one layered flow-network benchmark instance and
// writes it as a DIMACS "max" file.
//
// Usage:
//
//	flowgen [flags] <output-file>
//
// Flags mirror the generator parameters: --flow, --layer-size, --n-layers,
// --connect-ratio, plus --seed for reproducible instances.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/flowbench/cli"
	"github.com/katalvlaran/flowbench/dimacs"
	"github.com/katalvlaran/flowbench/layered"
)

func main() {
	f := pflag.NewFlagSet("flowgen", pflag.ExitOnError)
	f.Int64("flow", 100, "upper bound on edge capacities")
	f.Int("layer-size", 500, "vertices per layer")
	f.Int("n-layers", 1000, "number of layers (at least 2)")
	f.Float64("connect-ratio", 1.0, "edges per layer boundary as a multiple of layer size")
	f.Int64("seed", 0, "RNG seed (0 seeds from wall time)")
	f.BoolP("verbose", "v", false, "enable debug logging")
	_ = f.Parse(os.Args[1:])

	cfg, err := cli.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.NewLogger(cfg.Verbose)
	if f.NArg() != 1 {
		logger.Fatal("usage: flowgen [flags] <output-file>")
	}
	path := f.Arg(0)

	var opts []layered.Option
	if cfg.Seed != 0 {
		opts = append(opts, layered.WithSeed(cfg.Seed))
	}
	logger.Debug("generating instance",
		"flow", cfg.Flow, "layerSize", cfg.LayerSize, "nLayers", cfg.NLayers, "connectRatio", cfg.ConnectRatio)
	g, err := layered.Generate(layered.Config{
		FlowCap:      cfg.Flow,
		LayerSize:    cfg.LayerSize,
		NLayers:      cfg.NLayers,
		ConnectRatio: cfg.ConnectRatio,
	}, opts...)
	if err != nil {
		logger.Fatal("generation failed", "err", err)
	}
	if !g.Reachable(g.Source, g.Sink) {
		logger.Fatal("generated instance has no source→sink path", "source", g.Source, "sink", g.Sink)
	}

	if err = dimacs.WriteFile(g, path); err != nil {
		logger.Fatal("write failed", "err", err)
	}
	logger.Info("instance written",
		"path", path, "vertices", g.NumVertices, "edges", g.NumEdges(), "source", g.Source, "sink", g.Sink)
}
