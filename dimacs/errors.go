package dimacs

import "errors"

// ErrMalformed is the class sentinel for every decode failure: a missing or
// truncated header, missing or out-of-order terminal lines, short or
// non-numeric edge lines, and duplicate edges all wrap this value.
// Callers branch on the class with errors.Is; the wrapped message names the
// offending line.
var ErrMalformed = errors.New("dimacs: malformed input")
