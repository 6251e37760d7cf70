package catalog

import (
	"reflect"
	"testing"
)

// TestNewCatalog tests id indexing, ordering, and duplicate handling
func TestNewCatalog(t *testing.T) {
	c := NewCatalog([]*Track{
		{ID: "a"},
		{ID: "b"},
		nil,
		{ID: ""},
		{ID: "a", Metadata: &TrackMetadata{Title: "replacement"}},
	})

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got := c.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("IDs() = %v, want [a b]", got)
	}
	if got := c.Get("a"); got == nil || got.Metadata == nil || got.Metadata.Title != "replacement" {
		t.Error("duplicate id should replace the earlier track")
	}
	if c.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
	if c.Get("missing") != nil {
		t.Error("Get(missing) should return nil")
	}
}

// TestCatalog_NilSafety tests that a nil catalog behaves as empty
func TestCatalog_NilSafety(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.Get("x") != nil || c.Has("x") || c.IDs() != nil || c.Tracks() != nil {
		t.Error("nil catalog should behave as empty")
	}
}

// TestTrack_Gene tests genetic vector lookup on sparse tracks
func TestTrack_Gene(t *testing.T) {
	track := &Track{
		ID: "a",
		GeneticVectors: map[string][]float64{
			GeneHarmonic: {0.1, 0.2},
		},
	}

	if got := track.Gene(GeneHarmonic); !reflect.DeepEqual(got, []float64{0.1, 0.2}) {
		t.Errorf("Gene(harmonic) = %v", got)
	}
	if track.Gene(GeneRhythmic) != nil {
		t.Error("missing gene should return nil")
	}

	var none *Track
	if none.Gene(GeneHarmonic) != nil {
		t.Error("nil track should return nil gene")
	}
	if (&Track{ID: "b"}).Gene(GeneHarmonic) != nil {
		t.Error("track without vectors should return nil gene")
	}
}

// TestTrack_DisplayName tests the metadata fallback chain
func TestTrack_DisplayName(t *testing.T) {
	tests := []struct {
		name  string
		track *Track
		want  string
	}{
		{
			name: "artist and title",
			track: &Track{ID: "x", Metadata: &TrackMetadata{
				Artist: "Miles Davis", Title: "So What",
			}},
			want: "Miles Davis - So What",
		},
		{
			name:  "title only",
			track: &Track{ID: "x", Metadata: &TrackMetadata{Title: "So What"}},
			want:  "So What",
		},
		{
			name:  "no metadata",
			track: &Track{ID: "tracks/so_what.flac"},
			want:  "tracks/so_what.flac",
		},
		{
			name:  "empty metadata",
			track: &Track{ID: "x", Metadata: &TrackMetadata{}},
			want:  "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEmotionalCoordinates_Array tests the canonical vector ordering
func TestEmotionalCoordinates_Array(t *testing.T) {
	c := EmotionalCoordinates{Valence: 0.1, Energy: 0.2, Complexity: 0.3, Tension: 0.4}
	want := [4]float64{0.1, 0.2, 0.3, 0.4}
	if got := c.Array(); got != want {
		t.Errorf("Array() = %v, want %v", got, want)
	}
}
