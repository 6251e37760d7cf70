package discovery

import (
	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/graph"
)

// ExpandNeighbors computes the similarity context for one anchor track: the
// anchor plus every track one similarity edge away. The set is built fresh
// on every call; expanding a new anchor replaces any previous context
// rather than merging with it. Unknown anchors yield nil.
func ExpandNeighbors(g *graph.Graph, anchor string) map[string]struct{} {
	if !g.HasTrack(anchor) {
		return nil
	}

	context := make(map[string]struct{}, g.Degree(anchor)+1)
	context[anchor] = struct{}{}
	for _, n := range g.Neighbors(anchor) {
		context[n.ID] = struct{}{}
	}
	return context
}

// IncidentEdges returns copies of the edges touching the anchor, oriented
// anchor-first. Used to hand highlight data to the renderer without
// exposing graph internals.
func IncidentEdges(g *graph.Graph, anchor string) []catalog.Edge {
	neighbors := g.Neighbors(anchor)
	if len(neighbors) == 0 {
		return nil
	}
	edges := make([]catalog.Edge, 0, len(neighbors))
	for _, n := range neighbors {
		edges = append(edges, catalog.Edge{Source: anchor, Target: n.ID, Weight: n.Weight})
	}
	return edges
}
