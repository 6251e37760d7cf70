package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// galaxyTrack mirrors one entry of the analysis pipeline's exported
// visualization document. Field names follow the export format, which uses
// "track_id" alongside a legacy "id" key.
type galaxyTrack struct {
	TrackID        string                `json:"track_id"`
	ID             string                `json:"id"`
	Coordinates    *EmotionalCoordinates `json:"coordinates"`
	Position       *Position             `json:"position"`
	GeneticVectors map[string][]float64  `json:"genetic_vectors"`
	Metadata       *TrackMetadata        `json:"metadata"`
}

// galaxyConnection mirrors one similarity link of the export. Newer exports
// write "weight"; older ones write "similarity".
type galaxyConnection struct {
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	Weight     *float64 `json:"weight"`
	Similarity *float64 `json:"similarity"`
}

// galaxyDocument is the top-level shape of the exported JSON.
type galaxyDocument struct {
	Tracks      []galaxyTrack      `json:"tracks"`
	Connections []galaxyConnection `json:"connections"`
}

// DefaultEdgeWeight is assumed for connections that carry neither a weight
// nor a similarity value.
const DefaultEdgeWeight = 0.5

// LoadGalaxy parses an exported galaxy document into a catalog and edge
// list. Connections keep their declared weight, falling back to the
// similarity field and then to DefaultEdgeWeight. Endpoint validation is
// left to the graph builder, which drops edges referencing unknown tracks.
func LoadGalaxy(r io.Reader) (*Catalog, []Edge, error) {
	var doc galaxyDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode galaxy document: %w", err)
	}

	tracks := make([]*Track, 0, len(doc.Tracks))
	for _, gt := range doc.Tracks {
		id := gt.TrackID
		if id == "" {
			id = gt.ID
		}
		if id == "" {
			continue
		}
		tracks = append(tracks, &Track{
			ID:             id,
			GeneticVectors: gt.GeneticVectors,
			Emotional:      gt.Coordinates,
			Position:       gt.Position,
			Metadata:       gt.Metadata,
		})
	}

	edges := make([]Edge, 0, len(doc.Connections))
	for _, gc := range doc.Connections {
		if gc.Source == "" || gc.Target == "" {
			continue
		}
		weight := DefaultEdgeWeight
		switch {
		case gc.Weight != nil:
			weight = *gc.Weight
		case gc.Similarity != nil:
			weight = *gc.Similarity
		}
		edges = append(edges, Edge{Source: gc.Source, Target: gc.Target, Weight: weight})
	}

	return NewCatalog(tracks), edges, nil
}

// LoadGalaxyFile is LoadGalaxy over a file on disk.
func LoadGalaxyFile(path string) (*Catalog, []Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open galaxy file: %w", err)
	}
	defer f.Close()
	return LoadGalaxy(f)
}
