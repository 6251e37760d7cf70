package api

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/discovery"
	"github.com/auralab/resonance/pkg/flowpath"
	"github.com/auralab/resonance/pkg/logging"
	"github.com/auralab/resonance/pkg/similarity"
)

const defaultSimilarLimit = 10

// handleGalaxy serves the full visualization payload: every track plus
// every similarity edge, each edge emitted once.
func (s *Server) handleGalaxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	c := s.engine.Catalog()
	g := s.engine.Graph()

	tracks := make([]TrackResponse, 0, c.Len())
	for _, t := range c.Tracks() {
		tracks = append(tracks, s.trackResponse(t))
	}

	connections := make([]ConnectionResponse, 0, g.EdgeCount())
	for _, id := range c.IDs() {
		for _, n := range g.Neighbors(id) {
			if id < n.ID { // each undirected edge once
				connections = append(connections, ConnectionResponse{
					Source: id, Target: n.ID, Weight: n.Weight,
				})
			}
		}
	}

	s.writeJSON(w, http.StatusOK, GalaxyResponse{
		Tracks:      tracks,
		Connections: connections,
		Metadata: GalaxyMetadata{
			TotalTracks:      len(tracks),
			TotalConnections: len(connections),
			Timestamp:        time.Now(),
		},
	})
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	c := s.engine.Catalog()
	tracks := make([]TrackResponse, 0, c.Len())
	for _, t := range c.Tracks() {
		tracks = append(tracks, s.trackResponse(t))
	}
	s.writeJSON(w, http.StatusOK, tracks)
}

// handleTrack routes /api/tracks/{id}, /api/tracks/{id}/similar and
// /api/tracks/{id}/neighborhood.
func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/tracks/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "missing track id")
		return
	}

	switch sub {
	case "":
		t := s.engine.Catalog().Get(id)
		if t == nil {
			s.writeError(w, http.StatusNotFound, "track not found")
			return
		}
		s.writeJSON(w, http.StatusOK, s.trackResponse(t))

	case "similar":
		s.handleSimilar(w, r, id)

	case "neighborhood":
		s.handleNeighborhood(w, id)

	default:
		s.writeError(w, http.StatusNotFound, "not found")
	}
}

// handleSimilar serves the catalog-wide similarity ranking for one anchor.
func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request, id string) {
	limit := defaultSimilarLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			s.writeError(w, http.StatusBadRequest, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}

	relatives := similarity.Relatives(s.engine.Catalog(), id, limit)
	if relatives == nil {
		s.writeError(w, http.StatusNotFound, "track not found")
		return
	}

	out := make([]SimilarTrackResponse, 0, len(relatives))
	for _, rel := range relatives {
		out = append(out, SimilarTrackResponse{
			Track:      s.trackResponse(rel.Track),
			Similarity: rel.Score,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleNeighborhood serves the one-hop similarity context of one anchor.
func (s *Server) handleNeighborhood(w http.ResponseWriter, id string) {
	context := discovery.ExpandNeighbors(s.engine.Graph(), id)
	if context == nil {
		s.writeError(w, http.StatusNotFound, "track not found")
		return
	}
	if s.metrics != nil {
		s.metrics.RecordNeighborhood(len(context))
	}

	ids := make([]string, 0, len(context))
	for trackID := range context {
		ids = append(ids, trackID)
	}
	sort.Strings(ids)
	s.writeJSON(w, http.StatusOK, NeighborhoodResponse{Anchor: id, TrackIDs: ids})
}

func (s *Server) handleJourney(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req JourneyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	c := s.engine.Catalog()
	if !c.Has(req.StartTrack) || !c.Has(req.EndTrack) {
		s.writeError(w, http.StatusNotFound, "track not found")
		return
	}

	opts := discovery.DefaultPathOptions()
	if req.TargetLength > 0 {
		opts.TargetLength = req.TargetLength
	}
	if req.MaxLength > 0 {
		opts.MaxLength = req.MaxLength
	}

	start := time.Now()
	path := discovery.FindPath(s.engine.Graph(), req.StartTrack, req.EndTrack, opts)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordPathSearch(path != nil, len(path)-1, elapsed)
	}
	s.log.Debug("journey computed",
		logging.TrackID(req.StartTrack),
		logging.String("end", req.EndTrack),
		logging.Bool("found", path != nil),
		logging.Latency(elapsed))

	resp := JourneyResponse{
		StartTrack: req.StartTrack,
		EndTrack:   req.EndTrack,
		Found:      path != nil,
		Path:       path,
	}
	if path != nil {
		resp.Hops = len(path) - 1
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFlowPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req FlowPathRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	opts := flowpath.DefaultOptions()
	if req.Segments > 0 {
		opts.Segments = req.Segments
	}
	if req.LiftAmount > 0 {
		opts.LiftAmount = req.LiftAmount
	}

	c := s.engine.Catalog()
	points := flowpath.BuildForTracks(req.TrackIDs, func(id string) (catalog.Position, bool) {
		t := c.Get(id)
		if t == nil || t.Position == nil {
			return catalog.Position{}, false
		}
		return *t.Position, true
	}, opts)

	s.writeJSON(w, http.StatusOK, FlowPathResponse{Points: points})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	matches := s.engine.Catalog().Search(q, limit)
	out := make([]TrackResponse, 0, len(matches))
	for _, t := range matches {
		out = append(out, s.trackResponse(t))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, similarity.Stats(s.engine.Catalog(), s.engine.Graph()))
}
