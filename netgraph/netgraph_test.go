package netgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/flowbench/netgraph"
)

//----------------------------------------------------------------------------//
// AddEdge Tests
//----------------------------------------------------------------------------//

// TestAddEdge_Errors verifies endpoint, capacity, and duplicate rejection.
func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name     string
		u, v     int
		capacity int64
		err      error
	}{
		{"NegativeTail", -1, 0, 1, netgraph.ErrVertexRange},
		{"NegativeHead", 0, -2, 1, netgraph.ErrVertexRange},
		{"NegativeCapacity", 0, 1, -5, netgraph.ErrNegativeCapacity},
		{"Duplicate", 0, 1, 3, netgraph.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := netgraph.New(4, 0, 3)
			if tc.err == netgraph.ErrDuplicateEdge {
				if err := g.AddEdge(tc.u, tc.v, tc.capacity); err != nil {
					t.Fatalf("first AddEdge error: %v", err)
				}
			}
			err := g.AddEdge(tc.u, tc.v, tc.capacity)
			if !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d,%d) error = %v; want %v", tc.u, tc.v, tc.capacity, err, tc.err)
			}
		})
	}
}

// TestAddEdge_ZeroCapacity confirms capacity 0 is a legal transit value.
func TestAddEdge_ZeroCapacity(t *testing.T) {
	g := netgraph.New(3, 0, 2)
	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Fatalf("AddEdge with capacity 0 error: %v", err)
	}
	if c, ok := g.Capacity(0, 1); !ok || c != 0 {
		t.Errorf("Capacity(0,1) = (%d,%v); want (0,true)", c, ok)
	}
}

//----------------------------------------------------------------------------//
// Enumeration and Clone Tests
//----------------------------------------------------------------------------//

// TestEdges_InsertionOrder verifies that Edges() follows insertion order,
// which first-seen renumbering and deterministic encoding rely on.
func TestEdges_InsertionOrder(t *testing.T) {
	g := netgraph.New(5, 0, 4)
	inserted := []netgraph.Edge{
		{From: 3, To: 1, Capacity: 7},
		{From: 0, To: 3, Capacity: 2},
		{From: 1, To: 4, Capacity: 9},
	}
	for _, e := range inserted {
		if err := g.AddEdge(e.From, e.To, e.Capacity); err != nil {
			t.Fatalf("AddEdge error: %v", err)
		}
	}

	got := g.Edges()
	if len(got) != len(inserted) {
		t.Fatalf("Edges() length = %d; want %d", len(got), len(inserted))
	}
	for i, e := range inserted {
		if got[i] != e {
			t.Errorf("Edges()[%d] = %+v; want %+v", i, got[i], e)
		}
	}
	if g.NumEdges() != 3 {
		t.Errorf("NumEdges() = %d; want 3", g.NumEdges())
	}
}

// TestClone verifies deep copy: mutating the clone leaves the original intact.
func TestClone(t *testing.T) {
	g := netgraph.New(3, 0, 2)
	if err := g.AddEdge(0, 1, 4); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	c := g.Clone()
	if err := c.AddEdge(1, 2, 5); err != nil {
		t.Fatalf("AddEdge on clone error: %v", err)
	}

	if g.NumEdges() != 1 {
		t.Errorf("original NumEdges() = %d after clone mutation; want 1", g.NumEdges())
	}
	if c.NumEdges() != 2 {
		t.Errorf("clone NumEdges() = %d; want 2", c.NumEdges())
	}
}

//----------------------------------------------------------------------------//
// Reachable Tests
//----------------------------------------------------------------------------//

// TestReachable covers positive-capacity reachability, including the rule
// that zero-capacity edges do not carry connectivity.
func TestReachable(t *testing.T) {
	g := netgraph.New(4, 0, 3)
	for _, e := range []netgraph.Edge{
		{From: 0, To: 1, Capacity: 2},
		{From: 1, To: 2, Capacity: 1},
		{From: 2, To: 3, Capacity: 0}, // dead edge
	} {
		if err := g.AddEdge(e.From, e.To, e.Capacity); err != nil {
			t.Fatalf("AddEdge error: %v", err)
		}
	}

	if !g.Reachable(0, 2) {
		t.Error("Reachable(0,2) = false; want true")
	}
	if g.Reachable(0, 3) {
		t.Error("Reachable(0,3) = true across a zero-capacity edge; want false")
	}
	if g.Reachable(2, 0) {
		t.Error("Reachable(2,0) = true against edge direction; want false")
	}
	if !g.Reachable(3, 3) {
		t.Error("Reachable(3,3) = false; want true for identical endpoints")
	}
}
