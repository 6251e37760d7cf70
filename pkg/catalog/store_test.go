package catalog

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestStore_TrackRoundtrip tests single-track persistence
func TestStore_TrackRoundtrip(t *testing.T) {
	s := openTestStore(t)

	track := &Track{
		ID: "tracks/so_what.flac",
		GeneticVectors: map[string][]float64{
			GeneHarmonic: {0.1, 0.2, 0.3},
		},
		Emotional: &EmotionalCoordinates{Valence: 0.8, Energy: 0.4},
		Metadata:  &TrackMetadata{Title: "So What", Artist: "Miles Davis"},
	}
	if err := s.SaveTrack(track); err != nil {
		t.Fatalf("SaveTrack failed: %v", err)
	}

	got, err := s.GetTrack(track.ID)
	if err != nil {
		t.Fatalf("GetTrack failed: %v", err)
	}
	if got.Metadata.Title != "So What" {
		t.Errorf("title = %q, want So What", got.Metadata.Title)
	}
	if len(got.Gene(GeneHarmonic)) != 3 {
		t.Errorf("harmonic gene = %v", got.Gene(GeneHarmonic))
	}
	if got.Emotional == nil || got.Emotional.Valence != 0.8 {
		t.Errorf("coordinates = %+v", got.Emotional)
	}
}

// TestStore_GetTrackMissing tests the not-found sentinel
func TestStore_GetTrackMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetTrack("nope")
	if !errors.Is(err, ErrTrackNotFound) {
		t.Errorf("err = %v, want ErrTrackNotFound", err)
	}
}

// TestStore_SaveTrackValidation tests the id requirement
func TestStore_SaveTrackValidation(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveTrack(nil); err == nil {
		t.Error("SaveTrack(nil) should fail")
	}
	if err := s.SaveTrack(&Track{}); err == nil {
		t.Error("SaveTrack without id should fail")
	}
}

// TestStore_SnapshotRoundtrip tests full catalog persistence including edge
// order
func TestStore_SnapshotRoundtrip(t *testing.T) {
	s := openTestStore(t)

	c := NewCatalog([]*Track{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	edges := []Edge{
		{Source: "a", Target: "b", Weight: 0.9},
		{Source: "b", Target: "c", Weight: 0.7},
	}
	if err := s.SaveSnapshot(c, edges); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	gotCatalog, gotEdges, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if gotCatalog.Len() != 3 {
		t.Errorf("track count = %d, want 3", gotCatalog.Len())
	}
	if len(gotEdges) != 2 {
		t.Fatalf("edge count = %d, want 2", len(gotEdges))
	}
	if gotEdges[0].Source != "a" || gotEdges[1].Source != "b" {
		t.Errorf("edge order not preserved: %+v", gotEdges)
	}
}

// TestStore_SnapshotReplaces tests that a new snapshot fully replaces the
// previous one
func TestStore_SnapshotReplaces(t *testing.T) {
	s := openTestStore(t)

	first := NewCatalog([]*Track{{ID: "a"}, {ID: "b"}})
	if err := s.SaveSnapshot(first, []Edge{{Source: "a", Target: "b", Weight: 0.5}}); err != nil {
		t.Fatalf("first SaveSnapshot failed: %v", err)
	}

	second := NewCatalog([]*Track{{ID: "x"}})
	if err := s.SaveSnapshot(second, nil); err != nil {
		t.Fatalf("second SaveSnapshot failed: %v", err)
	}

	gotCatalog, gotEdges, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if gotCatalog.Len() != 1 || !gotCatalog.Has("x") {
		t.Errorf("catalog after replace = %v", gotCatalog.IDs())
	}
	if len(gotEdges) != 0 {
		t.Errorf("edges after replace = %+v, want none", gotEdges)
	}
}
