// Package graph builds and serves the track similarity graph: an adjacency
// structure over catalog tracks derived from a precomputed edge list.
package graph

import (
	"github.com/auralab/resonance/pkg/catalog"
)

// Neighbor is one adjacency entry: the track at the other end of an edge
// and the edge's similarity weight.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is an undirected adjacency structure over track ids. A Graph is
// immutable after Build; rebuilding produces a fresh Graph rather than
// mutating an existing one, so callers holding the old value are unaffected.
type Graph struct {
	adjacency map[string][]Neighbor
	edgeCount int
	dropped   int
}

// Build constructs the graph from a catalog and edge list in O(V+E).
// Every track in the catalog gets an (initially empty) adjacency slot.
// Edges referencing ids absent from the catalog are dropped; the count of
// dropped edges is available via DroppedEdges for callers that want to log
// it. Each kept edge is inserted symmetrically.
func Build(c *catalog.Catalog, edges []catalog.Edge) *Graph {
	g := &Graph{adjacency: make(map[string][]Neighbor, c.Len())}

	for _, id := range c.IDs() {
		g.adjacency[id] = nil
	}

	for _, e := range edges {
		if _, ok := g.adjacency[e.Source]; !ok {
			g.dropped++
			continue
		}
		if _, ok := g.adjacency[e.Target]; !ok {
			g.dropped++
			continue
		}
		g.adjacency[e.Source] = append(g.adjacency[e.Source], Neighbor{ID: e.Target, Weight: e.Weight})
		g.adjacency[e.Target] = append(g.adjacency[e.Target], Neighbor{ID: e.Source, Weight: e.Weight})
		g.edgeCount++
	}

	return g
}

// Neighbors returns the adjacency list for a track id. The returned slice
// is shared with the graph and must not be mutated; callers that need to
// hand neighbors to external code should copy it. Unknown ids return nil.
func (g *Graph) Neighbors(id string) []Neighbor {
	if g == nil {
		return nil
	}
	return g.adjacency[id]
}

// HasTrack reports whether the id is a node in the graph.
func (g *Graph) HasTrack(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adjacency[id]
	return ok
}

// Degree returns the number of edges incident to a track.
func (g *Graph) Degree(id string) int {
	return len(g.Neighbors(id))
}

// TrackCount returns the number of nodes.
func (g *Graph) TrackCount() int {
	if g == nil {
		return 0
	}
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges kept during Build.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return g.edgeCount
}

// DroppedEdges returns the number of edges discarded during Build because
// an endpoint was missing from the catalog.
func (g *Graph) DroppedEdges() int {
	if g == nil {
		return 0
	}
	return g.dropped
}

// TrackIDs returns all node ids in unspecified order.
func (g *Graph) TrackIDs() []string {
	if g == nil {
		return nil
	}
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	return ids
}
