package flowpath

import (
	"math"
	"testing"

	"github.com/auralab/resonance/pkg/catalog"
)

const epsilon = 1e-9

// TestBuild_SegmentEndpoints tests that segment endpoints are hit exactly,
// with no lift applied
func TestBuild_SegmentEndpoints(t *testing.T) {
	points := []catalog.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
	}
	opts := Options{Segments: 4, LiftAmount: 2.0}

	got := Build(points, opts)
	if len(got) != 5 {
		t.Fatalf("point count = %d, want 5", len(got))
	}
	if got[0] != points[0] {
		t.Errorf("first point = %+v, want %+v", got[0], points[0])
	}
	last := got[len(got)-1]
	if math.Abs(last.X-10) > epsilon || math.Abs(last.Y) > epsilon || math.Abs(last.Z) > epsilon {
		t.Errorf("last point = %+v, want (10, 0, 0)", last)
	}
}

// TestBuild_MidpointLift tests that the arc peaks at the segment midpoint
func TestBuild_MidpointLift(t *testing.T) {
	points := []catalog.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
	}
	opts := Options{Segments: 4, LiftAmount: 2.0}

	got := Build(points, opts)

	// s=2 of 4 is t=0.5: sin(pi/2) * 2.0 = 2.0 of lift.
	mid := got[2]
	if math.Abs(mid.X-5) > epsilon {
		t.Errorf("midpoint X = %v, want 5", mid.X)
	}
	if math.Abs(mid.Y-2.0) > epsilon {
		t.Errorf("midpoint lift = %v, want 2.0", mid.Y)
	}

	for i, p := range got {
		if p.Y > mid.Y+epsilon {
			t.Errorf("point %d has lift %v above midpoint %v", i, p.Y, mid.Y)
		}
		if p.Y < -epsilon {
			t.Errorf("point %d has negative lift %v", i, p.Y)
		}
	}
}

// TestBuild_ZeroLift tests that a zero lift amount yields straight-line
// interpolation
func TestBuild_ZeroLift(t *testing.T) {
	points := []catalog.Position{
		{X: 0, Y: 1, Z: 2},
		{X: 4, Y: 5, Z: 6},
	}

	got := Build(points, Options{Segments: 2, LiftAmount: 0})
	want := []catalog.Position{
		{X: 0, Y: 1, Z: 2},
		{X: 2, Y: 3, Z: 4},
		{X: 4, Y: 5, Z: 6},
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > epsilon ||
			math.Abs(got[i].Y-want[i].Y) > epsilon ||
			math.Abs(got[i].Z-want[i].Z) > epsilon {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestBuild_MultipleSegments tests the point count across a longer path
func TestBuild_MultipleSegments(t *testing.T) {
	points := []catalog.Position{
		{X: 0}, {X: 1}, {X: 2}, {X: 3},
	}
	opts := DefaultOptions()

	got := Build(points, opts)
	want := (len(points) - 1) * (opts.Segments + 1)
	if len(got) != want {
		t.Errorf("point count = %d, want %d", len(got), want)
	}
}

// TestBuild_TooFewPoints tests that degenerate inputs yield nil
func TestBuild_TooFewPoints(t *testing.T) {
	if got := Build(nil, DefaultOptions()); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
	single := []catalog.Position{{X: 1}}
	if got := Build(single, DefaultOptions()); got != nil {
		t.Errorf("Build(single point) = %v, want nil", got)
	}
}

// TestBuildForTracks tests position resolution and skipping of unplaced
// tracks
func TestBuildForTracks(t *testing.T) {
	positions := map[string]catalog.Position{
		"A": {X: 0},
		"C": {X: 10},
	}
	getPosition := func(id string) (catalog.Position, bool) {
		p, ok := positions[id]
		return p, ok
	}

	got := BuildForTracks([]string{"A", "B", "C"}, getPosition, Options{Segments: 2, LiftAmount: 0})
	if len(got) != 3 {
		t.Fatalf("point count = %d, want 3 (B skipped, one segment)", len(got))
	}
	if math.Abs(got[1].X-5) > epsilon {
		t.Errorf("midpoint X = %v, want 5", got[1].X)
	}

	if got := BuildForTracks([]string{"A", "C"}, nil, DefaultOptions()); got != nil {
		t.Errorf("nil position func should yield nil, got %v", got)
	}
}
