// Package similarity scores acoustic and emotional closeness between
// tracks. Scores always land in [0,1]; 1 means acoustically identical.
package similarity

import (
	"math"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/vector"
)

// Factor weights. The genetic factor dominates because gene vectors carry
// far more signal than the 4 emotional scalars.
const (
	emotionalWeight = 0.4
	harmonicWeight  = 0.3
	rhythmicWeight  = 0.3

	// NeutralScore is returned when neither track pair carries comparable
	// data: no evidence either way.
	NeutralScore = 0.5

	// emotionalRange normalizes the Euclidean distance over the
	// 4-dimensional emotional space into a [0,1] closeness value.
	emotionalRange = 2.0
)

// Score computes the blended similarity of two tracks. Each factor
// contributes only when both tracks carry its data; the result is
// renormalized by the total weight of the factors actually present so a
// partial comparison still spans [0,1]. With no comparable data at all the
// score is NeutralScore.
func Score(a, b *catalog.Track) float64 {
	if a == nil || b == nil {
		return NeutralScore
	}

	total := 0.0
	totalWeight := 0.0

	if a.Emotional != nil && b.Emotional != nil {
		total += emotionalWeight * emotionalCloseness(*a.Emotional, *b.Emotional)
		totalWeight += emotionalWeight
	}

	if f, ok := geneCloseness(a, b, catalog.GeneHarmonic); ok {
		total += harmonicWeight * f
		totalWeight += harmonicWeight
	}
	if f, ok := geneCloseness(a, b, catalog.GeneRhythmic); ok {
		total += rhythmicWeight * f
		totalWeight += rhythmicWeight
	}

	if totalWeight == 0 {
		return NeutralScore
	}

	return clamp01(total / totalWeight)
}

// emotionalCloseness maps distance in emotional space to [0,1].
func emotionalCloseness(a, b catalog.EmotionalCoordinates) float64 {
	av, bv := a.Array(), b.Array()
	dist, err := vector.EuclideanDistance(av[:], bv[:])
	if err != nil {
		return 0
	}
	return math.Max(0, 1-dist/emotionalRange)
}

// geneCloseness compares one named gene vector across two tracks. The
// second return is false when either track lacks the vector or the
// dimensions disagree.
func geneCloseness(a, b *catalog.Track, gene string) (float64, bool) {
	ga, gb := a.Gene(gene), b.Gene(gene)
	if len(ga) == 0 || len(gb) == 0 {
		return 0, false
	}
	sim, err := vector.CosineSimilarity(ga, gb)
	if err != nil {
		return 0, false
	}
	// Gene vectors are non-negative feature histograms, so cosine already
	// sits in [0,1]; the clamp guards against float noise.
	return clamp01(sim), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
