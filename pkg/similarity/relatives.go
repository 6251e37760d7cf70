package similarity

import (
	"sort"

	"github.com/auralab/resonance/pkg/catalog"
)

// Relative is one entry of a ranked similarity result.
type Relative struct {
	Track *catalog.Track
	Score float64
}

// Relatives ranks every other track in the catalog by blended similarity to
// the anchor, descending, capped at topK (0 means all). Unknown anchor ids
// return nil. Ties break on track id so results are deterministic.
func Relatives(c *catalog.Catalog, anchorID string, topK int) []Relative {
	anchor := c.Get(anchorID)
	if anchor == nil {
		return nil
	}

	relatives := make([]Relative, 0, c.Len())
	for _, t := range c.Tracks() {
		if t.ID == anchorID {
			continue
		}
		relatives = append(relatives, Relative{Track: t, Score: Score(anchor, t)})
	}

	sort.Slice(relatives, func(i, j int) bool {
		if relatives[i].Score != relatives[j].Score {
			return relatives[i].Score > relatives[j].Score
		}
		return relatives[i].Track.ID < relatives[j].Track.ID
	})

	if topK > 0 && len(relatives) > topK {
		relatives = relatives[:topK]
	}
	return relatives
}
