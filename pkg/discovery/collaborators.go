package discovery

import (
	"github.com/auralab/resonance/pkg/catalog"
)

// Renderer is the engine's view of the 3D scene. The engine hands it copies
// of highlight data and reads track positions from it; it never shares its
// own collections, so a later graph rebuild cannot alias renderer state.
type Renderer interface {
	// GetPosition returns the current layout position of a track, if the
	// renderer has placed it.
	GetPosition(trackID string) (catalog.Position, bool)
	// HighlightEdges draws the given similarity edges as highlighted.
	HighlightEdges(edges []catalog.Edge)
	// ClearHighlights removes all highlighted edges.
	ClearHighlights()
	// RestoreSequentialConnections redraws the plain track-to-track lines
	// of the current playlist order.
	RestoreSequentialConnections()
}

// Playlist is the engine's view of the playback queue. Indices are
// positions in the queue; CurrentIndex is -1 when nothing is selected for
// playback.
type Playlist interface {
	Contains(trackID string) bool
	// Append adds a track to the end of the queue and returns its index.
	Append(trackID string) int
	IndexOf(trackID string) int
	CurrentIndex() int
	SetCurrentIndex(i int)
}
