package similarity

import (
	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/graph"
)

// CatalogStats summarizes a catalog and its similarity graph for the
// statistics endpoint.
type CatalogStats struct {
	TrackCount    int     `json:"track_count"`
	EdgeCount     int     `json:"edge_count"`
	AnalyzedCount int     `json:"analyzed_count"` // tracks with emotional coordinates
	MeanValence   float64 `json:"mean_valence"`
	MeanEnergy    float64 `json:"mean_energy"`
	MeanDegree    float64 `json:"mean_degree"`
	MaxDegree     int     `json:"max_degree"`
	Isolated      int     `json:"isolated"` // tracks with no similarity edges
}

// Stats computes summary statistics over a catalog and graph. Either
// argument may be nil.
func Stats(c *catalog.Catalog, g *graph.Graph) CatalogStats {
	var s CatalogStats
	if c == nil {
		return s
	}

	s.TrackCount = c.Len()
	s.EdgeCount = g.EdgeCount()

	var valenceSum, energySum float64
	for _, t := range c.Tracks() {
		if t.Emotional != nil {
			s.AnalyzedCount++
			valenceSum += t.Emotional.Valence
			energySum += t.Emotional.Energy
		}

		deg := g.Degree(t.ID)
		s.MeanDegree += float64(deg)
		if deg > s.MaxDegree {
			s.MaxDegree = deg
		}
		if deg == 0 {
			s.Isolated++
		}
	}

	if s.AnalyzedCount > 0 {
		s.MeanValence = valenceSum / float64(s.AnalyzedCount)
		s.MeanEnergy = energySum / float64(s.AnalyzedCount)
	}
	if s.TrackCount > 0 {
		s.MeanDegree /= float64(s.TrackCount)
	}

	return s
}
