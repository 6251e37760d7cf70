// Package flowpath turns an ordered playlist's 3D track positions into a
// smooth visual curve: consecutive tracks are joined by gently arcing
// segments instead of straight lines. Purely cosmetic, no dependency on the
// similarity graph.
package flowpath

import (
	"math"

	"github.com/auralab/resonance/pkg/catalog"
)

// Options configures curve generation.
type Options struct {
	// Segments is the number of interpolated points per track pair.
	Segments int
	// LiftAmount scales the vertical arc joining two tracks.
	LiftAmount float64
}

// DefaultOptions returns the renderer's usual curve resolution.
func DefaultOptions() Options {
	return Options{
		Segments:   20,
		LiftAmount: 2.0,
	}
}

// Build interpolates a flow path through the given points, in order. Each
// consecutive pair contributes Segments+1 points from the first point
// (inclusive) to the second (inclusive); the lift term sin(t*pi)*LiftAmount
// is zero at both ends of a segment and maximal at its midpoint, so
// endpoints are hit exactly. Fewer than two input points yield nil.
func Build(points []catalog.Position, opts Options) []catalog.Position {
	if len(points) < 2 {
		return nil
	}
	if opts.Segments < 1 {
		opts.Segments = 1
	}

	out := make([]catalog.Position, 0, (len(points)-1)*(opts.Segments+1))
	for i := 0; i < len(points)-1; i++ {
		out = append(out, interpolateSegment(points[i], points[i+1], opts)...)
	}
	return out
}

func interpolateSegment(from, to catalog.Position, opts Options) []catalog.Position {
	seg := make([]catalog.Position, 0, opts.Segments+1)
	for s := 0; s <= opts.Segments; s++ {
		t := float64(s) / float64(opts.Segments)
		lift := math.Sin(t*math.Pi) * opts.LiftAmount
		seg = append(seg, catalog.Position{
			X: from.X + t*(to.X-from.X),
			Y: from.Y + t*(to.Y-from.Y) + lift,
			Z: from.Z + t*(to.Z-from.Z),
		})
	}
	return seg
}

// PositionFunc resolves a track id to its current layout position. It is
// how the renderer supplies positions without the flow path depending on
// renderer internals.
type PositionFunc func(trackID string) (catalog.Position, bool)

// BuildForTracks builds a flow path through an ordered track list, pulling
// positions via getPosition. Tracks the renderer has not placed are
// skipped.
func BuildForTracks(trackIDs []string, getPosition PositionFunc, opts Options) []catalog.Position {
	if getPosition == nil {
		return nil
	}
	points := make([]catalog.Position, 0, len(trackIDs))
	for _, id := range trackIDs {
		if p, ok := getPosition(id); ok {
			points = append(points, p)
		}
	}
	return Build(points, opts)
}
