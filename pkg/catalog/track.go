package catalog

// Gene vector names produced by the analysis pipeline. The catalog treats
// vector names as opaque beyond "same name means same dimensionality", but
// these two are the ones the similarity scorer blends.
const (
	GeneHarmonic = "harmonic"
	GeneRhythmic = "rhythmic"
)

// EmotionalCoordinates is a 4-dimensional normalized descriptor of a track's
// emotional character, produced upstream by the analysis pipeline.
type EmotionalCoordinates struct {
	Valence    float64 `json:"valence"`
	Energy     float64 `json:"energy"`
	Complexity float64 `json:"complexity"`
	Tension    float64 `json:"tension"`
}

// Array returns the coordinates as a fixed-size vector, in the canonical
// ordering valence, energy, complexity, tension.
func (c EmotionalCoordinates) Array() [4]float64 {
	return [4]float64{c.Valence, c.Energy, c.Complexity, c.Tension}
}

// Position is a point in the 3D galaxy layout. Positions are assigned and
// mutated by the external renderer/layout system; the engine only reads them.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TrackMetadata carries display metadata from the library scanner.
type TrackMetadata struct {
	Title  string  `json:"title,omitempty"`
	Artist string  `json:"artist,omitempty"`
	Album  string  `json:"album,omitempty"`
	Tempo  float64 `json:"tempo,omitempty"`
	Key    string  `json:"key,omitempty"`
	Mode   string  `json:"mode,omitempty"`
}

// Track is one entry in the music catalog. Every field except ID is
// optional: tracks enter the catalog before analysis completes, and the
// similarity scorer degrades gracefully when vectors or coordinates are
// missing.
type Track struct {
	ID string `json:"id"`

	// GeneticVectors maps gene name (e.g. "harmonic", "rhythmic") to a
	// fixed-length feature vector. Same name implies same length across
	// all tracks in a catalog.
	GeneticVectors map[string][]float64 `json:"genetic_vectors,omitempty"`

	Emotional *EmotionalCoordinates `json:"coordinates,omitempty"`
	Position  *Position             `json:"position,omitempty"`
	Metadata  *TrackMetadata        `json:"metadata,omitempty"`
}

// Gene returns the named genetic vector, or nil if the track does not
// carry it.
func (t *Track) Gene(name string) []float64 {
	if t == nil || t.GeneticVectors == nil {
		return nil
	}
	return t.GeneticVectors[name]
}

// DisplayName returns the best human-readable name for the track.
func (t *Track) DisplayName() string {
	if t.Metadata != nil && t.Metadata.Title != "" {
		if t.Metadata.Artist != "" {
			return t.Metadata.Artist + " - " + t.Metadata.Title
		}
		return t.Metadata.Title
	}
	return t.ID
}

// Edge is a precomputed similarity link between two tracks. Edges are
// logically undirected: an edge between A and B makes each a neighbor of
// the other.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"` // similarity in [0,1], higher = more similar
}

// Catalog is an id-indexed track collection with stable iteration order.
type Catalog struct {
	byID  map[string]*Track
	order []string
}

// NewCatalog builds a catalog from a track list. Later duplicates of an id
// replace earlier ones without disturbing the original ordering slot.
func NewCatalog(tracks []*Track) *Catalog {
	c := &Catalog{byID: make(map[string]*Track, len(tracks))}
	for _, t := range tracks {
		if t == nil || t.ID == "" {
			continue
		}
		if _, seen := c.byID[t.ID]; !seen {
			c.order = append(c.order, t.ID)
		}
		c.byID[t.ID] = t
	}
	return c
}

// Get returns the track with the given id, or nil if absent.
func (c *Catalog) Get(id string) *Track {
	if c == nil {
		return nil
	}
	return c.byID[id]
}

// Has reports whether the catalog contains the id.
func (c *Catalog) Has(id string) bool {
	return c.Get(id) != nil
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// IDs returns the track ids in insertion order. The slice is a copy.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Tracks returns the tracks in insertion order.
func (c *Catalog) Tracks() []*Track {
	if c == nil {
		return nil
	}
	tracks := make([]*Track, 0, len(c.order))
	for _, id := range c.order {
		tracks = append(tracks, c.byID[id])
	}
	return tracks
}
