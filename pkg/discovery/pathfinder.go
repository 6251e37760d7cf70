package discovery

import (
	"math"

	"github.com/auralab/resonance/pkg/graph"
)

// PathOptions configures the bounded path search.
type PathOptions struct {
	// TargetLength is the hop count a journey is biased toward. Candidate
	// steps pay a penalty proportional to their deviation from it.
	TargetLength int
	// MaxLength is the hard hop cap; no returned path exceeds
	// MaxLength+1 tracks.
	MaxLength int
}

// DefaultPathOptions returns the journey defaults: aim for ~10 hops, never
// exceed 25.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		TargetLength: 10,
		MaxLength:    25,
	}
}

// Penalty coefficients of the length-biased cost. These are tuned against
// the journey feel (roughly ten tracks, never a two-hop shortcut when a
// scenic route exists) and are not interchangeable with plain Dijkstra:
// the effective edge cost depends on how deep in the path the edge sits.
const (
	lengthPenaltyFactor    = 0.5
	overshootPenaltyFactor = 0.3
)

// FindPath searches for a musical journey from start to end: a route that
// prefers strong similarity edges while steering its total length toward
// opts.TargetLength and hard-capping it at opts.MaxLength hops.
//
// The search is a Dijkstra-shaped relaxation over a path-length-dependent
// cost, so it is a heuristic rather than a globally optimal shortest path.
// Each candidate step u->v at depth newHops costs
//
//	(1 - w) + |newHops - target|*0.5 + max(0, newHops - target)*0.3
//
// where w is the edge's similarity weight. Nodes reached at MaxLength hops
// are dead branches: they may terminate the search but are never expanded.
//
// Returns nil when either endpoint is unknown or no route exists within the
// hop cap. start == end yields the single-node path.
func FindPath(g *graph.Graph, start, end string, opts PathOptions) []string {
	if !g.HasTrack(start) || !g.HasTrack(end) {
		return nil
	}

	dist := map[string]float64{start: 0}
	hops := map[string]int{start: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	for {
		u, ok := nextUnvisited(dist, visited)
		if !ok {
			return nil // frontier exhausted, no path
		}
		if u == end {
			break
		}
		visited[u] = true
		if hops[u] >= opts.MaxLength {
			continue // dead branch, do not relax
		}

		newHops := hops[u] + 1
		if newHops > opts.MaxLength {
			continue
		}
		stepPenalty := lengthPenaltyFactor*math.Abs(float64(newHops-opts.TargetLength)) +
			overshootPenaltyFactor*math.Max(0, float64(newHops-opts.TargetLength))

		for _, n := range g.Neighbors(u) {
			if visited[n.ID] {
				continue
			}
			candidate := dist[u] + (1 - n.Weight) + stepPenalty
			if old, seen := dist[n.ID]; !seen || candidate < old {
				dist[n.ID] = candidate
				hops[n.ID] = newHops
				prev[n.ID] = u
			}
		}
	}

	return reconstruct(prev, start, end, opts.MaxLength)
}

// nextUnvisited picks the discovered, unvisited node with minimal distance.
// Ties break on id so the search is deterministic across runs.
func nextUnvisited(dist map[string]float64, visited map[string]bool) (string, bool) {
	best := ""
	bestDist := math.Inf(1)
	found := false
	for id, d := range dist {
		if visited[id] {
			continue
		}
		if !found || d < bestDist || (d == bestDist && id < best) {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

// reconstruct walks the predecessor chain from end back to start. The path
// is returned only if it genuinely reaches start and respects the hop cap.
func reconstruct(prev map[string]string, start, end string, maxLen int) []string {
	path := []string{end}
	node := end
	for node != start {
		p, ok := prev[node]
		if !ok || len(path) > maxLen {
			return nil
		}
		path = append(path, p)
		node = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
