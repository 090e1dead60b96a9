package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowbench/netgraph"
)

// Decode parses a DIMACS "max" stream into a netgraph.Graph.
//
// Grammar (permissive, matching the benchmark tooling this format serves):
//
//   - The first non-blank line must be the header "p max <V> <E>". V becomes
//     the declared vertex count; E is informational and is NOT re-validated
//     against the number of edge lines actually read.
//   - The source line "n <id> s" must precede the sink line "n <id> t".
//   - Every line starting with "a" is an edge "a <u> <v> <capacity>".
//   - Lines with any other leading token (comments, format extensions) are
//     ignored.
//
// Edges are stored in file order, which downstream first-seen renumbering
// depends on. All failures wrap ErrMalformed.
//
// Complexity: O(input) time, O(V + E) memory.
func Decode(r io.Reader) (*netgraph.Graph, error) {
	sc := bufio.NewScanner(r)

	var (
		g          *netgraph.Graph
		source     int
		haveSource bool
		haveSink   bool
	)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "p":
			if g != nil {
				return nil, fmt.Errorf("%w: duplicate header %q", ErrMalformed, sc.Text())
			}
			numVertices, err := parseHeader(fields)
			if err != nil {
				return nil, err
			}
			// Terminals are unknown until their n-lines arrive; patched below.
			g = netgraph.New(numVertices, 0, 0)
		case "n":
			if g == nil {
				return nil, fmt.Errorf("%w: terminal line before header: %q", ErrMalformed, sc.Text())
			}
			id, tag, err := parseTerminal(fields)
			if err != nil {
				return nil, err
			}
			switch {
			case !haveSource:
				if tag != "s" {
					return nil, fmt.Errorf("%w: expected source line %q before sink", ErrMalformed, sc.Text())
				}
				source = id
				haveSource = true
			case !haveSink:
				if tag != "t" {
					return nil, fmt.Errorf("%w: expected sink line, got %q", ErrMalformed, sc.Text())
				}
				g.Source = source
				g.Sink = id
				haveSink = true
			default:
				return nil, fmt.Errorf("%w: unexpected extra terminal line %q", ErrMalformed, sc.Text())
			}
		case "a":
			if g == nil || !haveSource || !haveSink {
				return nil, fmt.Errorf("%w: edge line %q before header and terminals", ErrMalformed, sc.Text())
			}
			u, v, capacity, err := parseEdge(fields)
			if err != nil {
				return nil, err
			}
			if err = g.AddEdge(u, v, capacity); err != nil {
				return nil, fmt.Errorf("%w: edge line %q: %w", ErrMalformed, sc.Text(), err)
			}
		default:
			// Unknown leading token: ignore for forward compatibility.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: missing \"p max\" header", ErrMalformed)
	}
	if !haveSource {
		return nil, fmt.Errorf("%w: missing source line \"n <id> s\"", ErrMalformed)
	}
	if !haveSink {
		return nil, fmt.Errorf("%w: missing sink line \"n <id> t\"", ErrMalformed)
	}

	return g, nil
}

// parseHeader validates "p max <V> <E>" and returns the declared vertex count.
func parseHeader(fields []string) (int, error) {
	if len(fields) < 4 || fields[1] != "max" {
		return 0, fmt.Errorf("%w: header %q, want \"p max <vertices> <edges>\"", ErrMalformed, strings.Join(fields, " "))
	}
	numVertices, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("%w: header vertex count %q: %w", ErrMalformed, fields[2], err)
	}
	// fields[3] is the declared edge count: informational only, by contract.
	if _, err = strconv.Atoi(fields[3]); err != nil {
		return 0, fmt.Errorf("%w: header edge count %q: %w", ErrMalformed, fields[3], err)
	}

	return numVertices, nil
}

// parseTerminal validates "n <id> <s|t>" and returns the id and role tag.
func parseTerminal(fields []string) (int, string, error) {
	if len(fields) < 3 {
		return 0, "", fmt.Errorf("%w: terminal line %q, want \"n <id> s|t\"", ErrMalformed, strings.Join(fields, " "))
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: terminal id %q: %w", ErrMalformed, fields[1], err)
	}

	return id, fields[2], nil
}

// parseEdge validates "a <u> <v> <capacity>".
func parseEdge(fields []string) (int, int, int64, error) {
	if len(fields) < 4 {
		return 0, 0, 0, fmt.Errorf("%w: edge line %q has fewer than 4 fields", ErrMalformed, strings.Join(fields, " "))
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: edge tail %q: %w", ErrMalformed, fields[1], err)
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: edge head %q: %w", ErrMalformed, fields[2], err)
	}
	capacity, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: edge capacity %q: %w", ErrMalformed, fields[3], err)
	}

	return u, v, capacity, nil
}
