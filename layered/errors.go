// Package: flowbench/layered
//
// errors.go — sentinel errors for the layered generator.
//
// Error policy (matching the rest of flowbench):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is; implementations attach call-site context
//     via %w wrapping and never stringify parameters into the sentinel itself.
//   - Validation failures never panic; they surface as wrapped sentinels.

package layered

import "errors"

// ErrInvalidParameter is the class sentinel for all parameter-validation
// failures: every rejected Config wraps this value, so callers can branch on
// the whole class with a single errors.Is check.
//
// Individual failure sites add context (which field, which bound) through
// fmt.Errorf("...: %w", ErrInvalidParameter).
var ErrInvalidParameter = errors.New("layered: invalid parameter")
