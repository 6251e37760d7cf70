package graph

import (
	"testing"

	"github.com/auralab/resonance/pkg/catalog"
)

func testCatalog(ids ...string) *catalog.Catalog {
	tracks := make([]*catalog.Track, 0, len(ids))
	for _, id := range ids {
		tracks = append(tracks, &catalog.Track{ID: id})
	}
	return catalog.NewCatalog(tracks)
}

// TestBuild_Symmetry tests that inserting an edge makes both endpoints
// neighbors of each other with the same weight
func TestBuild_Symmetry(t *testing.T) {
	c := testCatalog("A", "B")
	g := Build(c, []catalog.Edge{{Source: "A", Target: "B", Weight: 0.7}})

	foundB := false
	for _, n := range g.Neighbors("A") {
		if n.ID == "B" && n.Weight == 0.7 {
			foundB = true
		}
	}
	if !foundB {
		t.Error("B should be a neighbor of A with weight 0.7")
	}

	foundA := false
	for _, n := range g.Neighbors("B") {
		if n.ID == "A" && n.Weight == 0.7 {
			foundA = true
		}
	}
	if !foundA {
		t.Error("A should be a neighbor of B with weight 0.7")
	}
}

// TestBuild_DropsUnknownEndpoints tests that edges referencing ids absent
// from the catalog are dropped
func TestBuild_DropsUnknownEndpoints(t *testing.T) {
	c := testCatalog("A", "B")
	g := Build(c, []catalog.Edge{
		{Source: "A", Target: "B", Weight: 0.5},
		{Source: "A", Target: "Z", Weight: 0.9},
		{Source: "Z", Target: "B", Weight: 0.9},
	})

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if g.DroppedEdges() != 2 {
		t.Errorf("DroppedEdges = %d, want 2", g.DroppedEdges())
	}
	if g.Degree("A") != 1 {
		t.Errorf("Degree(A) = %d, want 1", g.Degree("A"))
	}
}

// TestBuild_AllTracksPresent tests that isolated tracks still appear as nodes
func TestBuild_AllTracksPresent(t *testing.T) {
	c := testCatalog("A", "B", "C")
	g := Build(c, []catalog.Edge{{Source: "A", Target: "B", Weight: 0.5}})

	if g.TrackCount() != 3 {
		t.Errorf("TrackCount = %d, want 3", g.TrackCount())
	}
	if !g.HasTrack("C") {
		t.Error("isolated track C should still be a node")
	}
	if g.Degree("C") != 0 {
		t.Errorf("Degree(C) = %d, want 0", g.Degree("C"))
	}
}

// TestBuild_Rebuild tests that rebuilding produces an independent graph
func TestBuild_Rebuild(t *testing.T) {
	c := testCatalog("A", "B")
	g1 := Build(c, []catalog.Edge{{Source: "A", Target: "B", Weight: 0.5}})
	g2 := Build(c, nil)

	if g1.EdgeCount() != 1 {
		t.Errorf("first graph EdgeCount = %d, want 1", g1.EdgeCount())
	}
	if g2.EdgeCount() != 0 {
		t.Errorf("rebuilt graph EdgeCount = %d, want 0", g2.EdgeCount())
	}
}

// TestGraph_NilSafety tests that a nil graph answers queries harmlessly
func TestGraph_NilSafety(t *testing.T) {
	var g *Graph
	if g.HasTrack("A") {
		t.Error("nil graph should not contain tracks")
	}
	if g.Neighbors("A") != nil {
		t.Error("nil graph should return nil neighbors")
	}
	if g.TrackCount() != 0 || g.EdgeCount() != 0 {
		t.Error("nil graph should report zero counts")
	}
}
