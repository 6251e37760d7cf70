// Package api serves the discovery engine over HTTP. It is a thin shell:
// every endpoint delegates to the in-process engine and returns copies of
// its outputs.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/discovery"
	gql "github.com/auralab/resonance/pkg/graphql"
	"github.com/auralab/resonance/pkg/logging"
	"github.com/auralab/resonance/pkg/metrics"
)

const version = "1.0.0"

// Server is the HTTP API over a discovery engine.
type Server struct {
	engine    *discovery.Engine
	uuids     *catalog.UUIDMap
	metrics   *metrics.Registry
	log       logging.Logger
	validate  *validator.Validate
	gqlHandle http.Handler
	startTime time.Time
}

// NewServer wires the API to an engine. metrics and log may be nil.
func NewServer(engine *discovery.Engine, reg *metrics.Registry, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	s := &Server{
		engine:    engine,
		uuids:     catalog.NewUUIDMap(),
		metrics:   reg,
		log:       log.With(logging.Component("api")),
		validate:  validator.New(),
		startTime: time.Now(),
	}
	s.uuids.PopulateFrom(engine.Catalog())

	if schema, err := gql.GenerateSchema(engine); err != nil {
		s.log.Warn("graphql schema generation failed", logging.Error(err))
	} else {
		s.gqlHandle = gql.NewHandler(schema)
	}

	return s
}

// Handler builds the routed HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	mux.HandleFunc("/api/galaxy", s.handleGalaxy)
	mux.HandleFunc("/api/tracks", s.handleTracks)
	mux.HandleFunc("/api/tracks/", s.handleTrack) // /api/tracks/{id}[/similar|/neighborhood]
	mux.HandleFunc("/api/journey", s.handleJourney)
	mux.HandleFunc("/api/flowpath", s.handleFlowPath)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/statistics", s.handleStatistics)

	if s.gqlHandle != nil {
		mux.Handle("/graphql", s.gqlHandle)
	}

	return s.panicRecoveryMiddleware(s.loggingMiddleware(s.corsMiddleware(mux)))
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", logging.Error(err))
	}
}

// writeError writes a JSON error payload.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

// decodeAndValidate decodes a JSON request body and runs struct
// validation.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (s *Server) trackResponse(t *catalog.Track) TrackResponse {
	resp := TrackResponse{
		ID:          t.ID,
		Metadata:    t.Metadata,
		Coordinates: t.Emotional,
		Position:    t.Position,
		Degree:      s.engine.Graph().Degree(t.ID),
	}
	if u, ok := s.uuids.UUID(t.ID); ok {
		resp.UUID = u.String()
	}
	return resp
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	g := s.engine.Graph()
	status := "healthy"
	if g.TrackCount() == 0 {
		status = "empty"
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(s.startTime).String(),
		Tracks:    g.TrackCount(),
		Edges:     g.EdgeCount(),
	})
}
