package discovery

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/graph"
)

func buildGraph(ids []string, edges []catalog.Edge) *graph.Graph {
	tracks := make([]*catalog.Track, 0, len(ids))
	for _, id := range ids {
		tracks = append(tracks, &catalog.Track{ID: id})
	}
	return graph.Build(catalog.NewCatalog(tracks), edges)
}

// TestFindPath_SimpleChain tests the reference fixture: the strong A-B-C
// chain is found, the weak A-D spur is not taken
func TestFindPath_SimpleChain(t *testing.T) {
	g := buildGraph([]string{"A", "B", "C", "D"}, []catalog.Edge{
		{Source: "A", Target: "B", Weight: 0.9},
		{Source: "B", Target: "C", Weight: 0.8},
		{Source: "A", Target: "D", Weight: 0.1},
	})

	path := FindPath(g, "A", "C", DefaultPathOptions())
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("FindPath(A, C) = %v, want %v", path, want)
	}
}

// TestFindPath_UnknownID tests that an unknown endpoint yields no path
func TestFindPath_UnknownID(t *testing.T) {
	g := buildGraph([]string{"A", "B"}, []catalog.Edge{
		{Source: "A", Target: "B", Weight: 0.9},
	})

	if path := FindPath(g, "A", "Z", DefaultPathOptions()); path != nil {
		t.Errorf("FindPath to unknown id = %v, want nil", path)
	}
	if path := FindPath(g, "Z", "A", DefaultPathOptions()); path != nil {
		t.Errorf("FindPath from unknown id = %v, want nil", path)
	}
}

// TestFindPath_Disconnected tests that separate components yield no path
func TestFindPath_Disconnected(t *testing.T) {
	g := buildGraph([]string{"A", "B", "C", "D"}, []catalog.Edge{
		{Source: "A", Target: "B", Weight: 0.9},
		{Source: "C", Target: "D", Weight: 0.9},
	})

	if path := FindPath(g, "A", "C", DefaultPathOptions()); path != nil {
		t.Errorf("FindPath across components = %v, want nil", path)
	}
}

// TestFindPath_StartEqualsEnd tests the degenerate single-node journey
func TestFindPath_StartEqualsEnd(t *testing.T) {
	g := buildGraph([]string{"A", "B"}, []catalog.Edge{
		{Source: "A", Target: "B", Weight: 0.9},
	})

	path := FindPath(g, "A", "A", DefaultPathOptions())
	if !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("FindPath(A, A) = %v, want [A]", path)
	}
}

// TestFindPath_MaxLengthBound tests the hard hop cap
func TestFindPath_MaxLengthBound(t *testing.T) {
	// Chain of 11 nodes requires 10 hops end to end.
	ids := make([]string, 11)
	var edges []catalog.Edge
	for i := range ids {
		ids[i] = fmt.Sprintf("n%02d", i)
		if i > 0 {
			edges = append(edges, catalog.Edge{Source: ids[i-1], Target: ids[i], Weight: 0.9})
		}
	}
	g := buildGraph(ids, edges)

	opts := PathOptions{TargetLength: 3, MaxLength: 5}
	if path := FindPath(g, ids[0], ids[10], opts); path != nil {
		t.Errorf("path of 10 hops returned despite MaxLength=5: %v", path)
	}

	// Within bounds the same chain is reachable.
	opts = PathOptions{TargetLength: 10, MaxLength: 10}
	path := FindPath(g, ids[0], ids[10], opts)
	if path == nil {
		t.Fatal("expected path within MaxLength=10")
	}
	if len(path) != 11 {
		t.Errorf("path length = %d, want 11", len(path))
	}
	if len(path) > opts.MaxLength+1 {
		t.Errorf("path has %d nodes, exceeding MaxLength+1 = %d", len(path), opts.MaxLength+1)
	}
}

// TestFindPath_LengthBias tests that the target length steers route choice:
// for target 2 the two-hop scenic route beats the direct edge, for target 1
// the direct edge wins
func TestFindPath_LengthBias(t *testing.T) {
	g := buildGraph([]string{"A", "B", "C"}, []catalog.Edge{
		{Source: "A", Target: "C", Weight: 0.5},
		{Source: "A", Target: "B", Weight: 0.9},
		{Source: "B", Target: "C", Weight: 0.9},
	})

	path := FindPath(g, "A", "C", PathOptions{TargetLength: 2, MaxLength: 10})
	if !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("target=2: path = %v, want [A B C]", path)
	}

	path = FindPath(g, "A", "C", PathOptions{TargetLength: 1, MaxLength: 10})
	if !reflect.DeepEqual(path, []string{"A", "C"}) {
		t.Errorf("target=1: path = %v, want [A C]", path)
	}
}

// TestFindPath_PrefersStrongEdges tests that higher similarity lowers cost
// when lengths are equal
func TestFindPath_PrefersStrongEdges(t *testing.T) {
	g := buildGraph([]string{"A", "B1", "B2", "C"}, []catalog.Edge{
		{Source: "A", Target: "B1", Weight: 0.9},
		{Source: "B1", Target: "C", Weight: 0.9},
		{Source: "A", Target: "B2", Weight: 0.2},
		{Source: "B2", Target: "C", Weight: 0.2},
	})

	path := FindPath(g, "A", "C", PathOptions{TargetLength: 2, MaxLength: 10})
	if !reflect.DeepEqual(path, []string{"A", "B1", "C"}) {
		t.Errorf("path = %v, want the strong route [A B1 C]", path)
	}
}

// TestFindPath_EmptyGraph tests that an engine without a loaded graph
// reports no path rather than failing
func TestFindPath_EmptyGraph(t *testing.T) {
	g := buildGraph(nil, nil)
	if path := FindPath(g, "A", "B", DefaultPathOptions()); path != nil {
		t.Errorf("FindPath on empty graph = %v, want nil", path)
	}
}
