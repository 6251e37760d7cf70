// Package discovery implements the track discovery engine: neighborhood
// expansion in "similar" mode, bounded journey pathfinding, and the state
// machine that routes user actions to one or the other.
//
// The algorithmic pieces (ExpandNeighbors, FindPath) are pure functions
// over an immutable graph. Engine layers the mutable interaction state on
// top and talks to the renderer and playlist through narrow interfaces,
// always passing copies.
package discovery

import (
	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/graph"
	"github.com/auralab/resonance/pkg/logging"
	"github.com/auralab/resonance/pkg/similarity"
)

// Engine owns the similarity graph and the discovery interaction state.
// It is not safe for concurrent use; callers drive it from a single event
// loop, one interaction at a time.
type Engine struct {
	catalog  *catalog.Catalog
	graph    *graph.Graph
	state    State
	context  map[string]struct{}
	pathOpts PathOptions

	renderer Renderer
	playlist Playlist
	log      logging.Logger
}

// NewEngine creates an engine wired to its collaborators. Either
// collaborator may be nil, in which case the corresponding side effects are
// skipped (useful for headless serving and tests).
func NewEngine(renderer Renderer, playlist Playlist, log logging.Logger) *Engine {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Engine{
		pathOpts: DefaultPathOptions(),
		renderer: renderer,
		playlist: playlist,
		log:      log.With(logging.Component("discovery")),
	}
}

// SetPathOptions overrides the journey search bounds.
func (e *Engine) SetPathOptions(opts PathOptions) {
	e.pathOpts = opts
}

// LoadGraph replaces the engine's catalog and similarity graph. The
// previous graph is discarded entirely; discovery state resets to idle.
func (e *Engine) LoadGraph(c *catalog.Catalog, edges []catalog.Edge) {
	e.catalog = c
	e.graph = graph.Build(c, edges)
	e.state = State{}
	e.context = nil

	e.log.Info("graph loaded",
		logging.Int("tracks", e.graph.TrackCount()),
		logging.Int("edges", e.graph.EdgeCount()),
		logging.Int("dropped_edges", e.graph.DroppedEdges()),
	)
}

// Graph exposes the current similarity graph for read-only queries.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Catalog exposes the current catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// State returns a copy of the discovery state.
func (e *Engine) State() State {
	return e.state
}

// Similarity scores two tracks by id. ok is false when either id is
// unknown.
func (e *Engine) Similarity(aID, bID string) (score float64, ok bool) {
	a, b := e.catalog.Get(aID), e.catalog.Get(bID)
	if a == nil || b == nil {
		return 0, false
	}
	return similarity.Score(a, b), true
}

// ExpandNeighbors runs a neighborhood query for the anchor and installs
// the result as the current similarity context. The returned set is a
// copy; mutating it does not affect the engine.
func (e *Engine) ExpandNeighbors(anchor string) map[string]struct{} {
	context := ExpandNeighbors(e.graph, anchor)
	e.context = context
	return copySet(context)
}

// SimilarityContext returns a copy of the current highlighted
// neighborhood, or nil when none is active.
func (e *Engine) SimilarityContext() map[string]struct{} {
	return copySet(e.context)
}

// FindPath computes a journey between two tracks using the engine's
// current path options. Returns nil when no route exists within bounds.
func (e *Engine) FindPath(start, end string) []string {
	path := FindPath(e.graph, start, end, e.pathOpts)
	if path == nil {
		e.log.Debug("no path found",
			logging.TrackID(start), logging.String("end", end))
		return nil
	}
	e.log.Debug("path found",
		logging.TrackID(start), logging.String("end", end),
		logging.Int("hops", len(path)-1))
	return path
}

// SetMode switches the active discovery mode. Every transition clears
// current highlights; leaving for idle additionally restores the
// playlist's plain sequential connections.
func (e *Engine) SetMode(m Mode) {
	e.clearHighlights()
	e.context = nil
	e.state.resetPathfinding()

	prev := e.state.Mode
	e.state.Mode = m

	if m == ModeNone && e.renderer != nil {
		e.renderer.RestoreSequentialConnections()
	}

	if prev != m {
		e.log.Info("discovery mode changed",
			logging.String("from", prev.String()),
			logging.String("to", m.String()))
	}
}

// SetAwaitingStart enters pathfinding mode waiting for the user to click
// the journey's start track.
func (e *Engine) SetAwaitingStart() {
	e.enterPathfinding()
	e.state.AwaitingStart = true
	e.state.AwaitingEnd = false
}

// SetAwaitingEnd enters pathfinding mode waiting for the user to click the
// journey's end track.
func (e *Engine) SetAwaitingEnd() {
	e.enterPathfinding()
	e.state.AwaitingEnd = true
	e.state.AwaitingStart = false
}

func (e *Engine) enterPathfinding() {
	e.clearHighlights()
	e.context = nil
	e.state.Mode = ModePathfinding
}

// OnTrackClicked routes a track click according to the active mode. In
// pathfinding it records the awaited endpoint; in similar mode it expands
// and highlights the clicked track's neighborhood. Unknown ids are
// ignored.
func (e *Engine) OnTrackClicked(id string) {
	if !e.graph.HasTrack(id) {
		return
	}

	switch {
	case e.state.Mode == ModePathfinding && e.state.AwaitingStart:
		e.state.StartTrack = id
		e.state.AwaitingStart = false
		e.log.Debug("journey start selected", logging.TrackID(id))

	case e.state.Mode == ModePathfinding && e.state.AwaitingEnd:
		e.state.EndTrack = id
		e.state.AwaitingEnd = false
		e.log.Debug("journey end selected", logging.TrackID(id))

	case e.state.Mode == ModeSimilar:
		e.context = ExpandNeighbors(e.graph, id)
		if e.renderer != nil {
			e.renderer.ClearHighlights()
			e.renderer.HighlightEdges(IncidentEdges(e.graph, id))
		}
		e.log.Debug("neighborhood expanded",
			logging.TrackID(id), logging.Int("context_size", len(e.context)))
	}
}

// FindSelectedPath runs the journey search for the currently selected
// endpoints and, on success, appends the path's tracks to the playlist
// (skipping tracks already queued). If nothing is selected for playback,
// the journey's first track becomes current. Returns the path, or nil when
// endpoints are missing or no route exists.
func (e *Engine) FindSelectedPath() []string {
	if !e.state.ReadyToFindPath() {
		return nil
	}

	path := e.FindPath(e.state.StartTrack, e.state.EndTrack)
	if path == nil {
		return nil
	}

	if e.playlist != nil {
		for _, id := range path {
			if !e.playlist.Contains(id) {
				e.playlist.Append(id)
			}
		}
		if e.playlist.CurrentIndex() < 0 {
			if i := e.playlist.IndexOf(path[0]); i >= 0 {
				e.playlist.SetCurrentIndex(i)
			}
		}
	}

	return path
}

func (e *Engine) clearHighlights() {
	if e.renderer != nil {
		e.renderer.ClearHighlights()
	}
}

func copySet(s map[string]struct{}) map[string]struct{} {
	if s == nil {
		return nil
	}
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
