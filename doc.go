// Package flowbench produces and canonicalizes synthetic flow-network
// benchmark instances for evaluating maximum-flow solvers.
//
// 🚀 What is flowbench?
//
//	A small, focused toolkit that brings together:
//		• Layered generator: structured random networks with a guaranteed
//		  source-to-sink path and a tunable density knob
//		• DIMACS codec: streaming reader/writer for the "max" text format,
//		  with atomic file finalization
//		• Relabeler: zero-capacity elimination + dense first-seen renumbering
//		  that preserves the source/sink roles
//
// ✨ Why choose flowbench?
//
//   - Reproducible – inject a seed and get the same instance, byte for byte
//   - Honest failures – sentinel errors, no half-written output files
//   - Solver-agnostic – any max-flow implementation that reads DIMACS works
//
// Everything is organized under five subpackages and two commands:
//
//	netgraph/        — the shared flow-network Graph type
//	layered/         — the layered random network generator
//	dimacs/          — DIMACS "max" encode/decode + file helpers
//	relabel/         — graph compaction and renumbering
//	cli/             — config, logging, and watch plumbing for the commands
//	cmd/flowgen      — generate one instance file
//	cmd/flowrelabel  — canonicalize instance files, one-shot or watch mode
//
//	go get github.com/katalvlaran/flowbench
package flowbench
