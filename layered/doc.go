// Package layered generates synthetic layered flow networks for benchmarking
// maximum-flow solvers.
//
// What:
//
//   - Generate builds a directed network of NLayers contiguous layers of
//     LayerSize vertices each, a virtual super-source, and a super-sink.
//   - Each layer boundary carries a shuffled one-to-one base matching at full
//     capacity FlowCap, guaranteeing at least one source-to-sink path of
//     bottleneck FlowCap, plus uniformly drawn extra edges up to a total of
//     ⌊ConnectRatio·LayerSize⌋ per boundary.
//
// Why:
//
//   - Layered instances stress augmenting-path and preflow solvers with a
//     controllable density knob (ConnectRatio) and a known capacity bound,
//     while the base matching rules out degenerate disconnected instances.
//
// Determinism:
//
//   - The random source is injected (WithSeed / WithRand); for a fixed seed
//     and Config the output is reproduced exactly. Without an option the
//     generator uses a time-seeded stream.
//
// Errors:
//
//   - ErrInvalidParameter: FlowCap < 1, LayerSize < 1, NLayers < 2,
//     ConnectRatio < 1, or an extra-edge request exceeding the
//     LayerSize² − LayerSize candidate pool of a boundary.
package layered
