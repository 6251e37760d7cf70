package catalog

import (
	"github.com/google/uuid"
)

// trackNamespace seeds deterministic UUID derivation so that the same track
// id always maps to the same UUID across processes and restarts.
var trackNamespace = uuid.MustParse("7b9a5fd4-31c2-4a08-9d6f-2e8c4b1a0d53")

// UUIDMap maintains a stable bidirectional mapping between catalog track ids
// and externally visible UUIDs. Audio proxies and frontends address tracks
// by UUID so that file paths never leak.
type UUIDMap struct {
	byID   map[string]uuid.UUID
	byUUID map[uuid.UUID]string
}

// NewUUIDMap creates an empty mapping.
func NewUUIDMap() *UUIDMap {
	return &UUIDMap{
		byID:   make(map[string]uuid.UUID),
		byUUID: make(map[uuid.UUID]string),
	}
}

// GetOrCreate returns the UUID for a track id, deriving and remembering one
// if it has not been seen before. Derivation is deterministic (v5, SHA-1
// over the track id).
func (m *UUIDMap) GetOrCreate(trackID string) uuid.UUID {
	if u, ok := m.byID[trackID]; ok {
		return u
	}
	u := uuid.NewSHA1(trackNamespace, []byte(trackID))
	m.byID[trackID] = u
	m.byUUID[u] = trackID
	return u
}

// TrackID resolves a UUID back to its track id.
func (m *UUIDMap) TrackID(u uuid.UUID) (string, bool) {
	id, ok := m.byUUID[u]
	return id, ok
}

// UUID returns the UUID for a known track id without creating one.
func (m *UUIDMap) UUID(trackID string) (uuid.UUID, bool) {
	u, ok := m.byID[trackID]
	return u, ok
}

// Len returns the number of mapped tracks.
func (m *UUIDMap) Len() int {
	return len(m.byID)
}

// PopulateFrom ensures every track in the catalog has a UUID.
func (m *UUIDMap) PopulateFrom(c *Catalog) {
	for _, id := range c.IDs() {
		m.GetOrCreate(id)
	}
}
