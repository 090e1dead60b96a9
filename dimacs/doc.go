// Package dimacs reads and writes flow networks in the DIMACS "max" text
// format, the sole persisted representation flowbench exchanges with external
// max-flow solvers.
//
// Format:
//
//	p max <vertexCount> <edgeCount>
//	n <source> s
//	n <sink> t
//	a <u> <v> <capacity>
//
// What:
//
//   - Encode / Decode stream over io.Writer / io.Reader.
//   - WriteFile finalizes atomically (temporary file + rename), ReadFile is
//     the matching convenience opener.
//   - DecodeMatrix additionally parses the plain adjacency-matrix text format
//     found in some instance collections.
//
// Decoding is deliberately permissive: the header's declared edge count is
// informational, and lines with unknown leading tokens are skipped so
// comment lines and format extensions pass through untouched. Structural
// violations — no header, missing or out-of-order terminal lines, truncated
// edge lines — wrap the single sentinel ErrMalformed.
package dimacs
