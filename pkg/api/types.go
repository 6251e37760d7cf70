package api

import (
	"time"

	"github.com/auralab/resonance/pkg/catalog"
)

// TrackResponse is the wire shape of one track.
type TrackResponse struct {
	ID          string                        `json:"id"`
	UUID        string                        `json:"uuid,omitempty"`
	Metadata    *catalog.TrackMetadata        `json:"metadata,omitempty"`
	Coordinates *catalog.EmotionalCoordinates `json:"coordinates,omitempty"`
	Position    *catalog.Position             `json:"position,omitempty"`
	Degree      int                           `json:"degree"`
}

// ConnectionResponse is the wire shape of one similarity edge.
type ConnectionResponse struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// GalaxyResponse is the full visualization payload.
type GalaxyResponse struct {
	Tracks      []TrackResponse      `json:"tracks"`
	Connections []ConnectionResponse `json:"connections"`
	Metadata    GalaxyMetadata       `json:"metadata"`
}

// GalaxyMetadata summarizes the payload.
type GalaxyMetadata struct {
	TotalTracks      int       `json:"total_tracks"`
	TotalConnections int       `json:"total_connections"`
	Timestamp        time.Time `json:"timestamp"`
}

// SimilarTrackResponse is one ranked similarity result.
type SimilarTrackResponse struct {
	Track      TrackResponse `json:"track"`
	Similarity float64       `json:"similarity"`
}

// JourneyRequest asks for a path between two tracks.
type JourneyRequest struct {
	StartTrack   string `json:"start_track" validate:"required"`
	EndTrack     string `json:"end_track" validate:"required"`
	TargetLength int    `json:"target_length" validate:"omitempty,min=1,max=100"`
	MaxLength    int    `json:"max_length" validate:"omitempty,min=1,max=500"`
}

// JourneyResponse carries the found path, if any.
type JourneyResponse struct {
	StartTrack string   `json:"start_track"`
	EndTrack   string   `json:"end_track"`
	Found      bool     `json:"found"`
	Path       []string `json:"path,omitempty"`
	Hops       int      `json:"hops"`
}

// FlowPathRequest asks for the cosmetic curve through an ordered track
// list.
type FlowPathRequest struct {
	TrackIDs   []string `json:"track_ids" validate:"required,min=2,max=1000"`
	Segments   int      `json:"segments" validate:"omitempty,min=1,max=200"`
	LiftAmount float64  `json:"lift_amount" validate:"omitempty,min=0"`
}

// FlowPathResponse carries the interpolated points.
type FlowPathResponse struct {
	Points []catalog.Position `json:"points"`
}

// NeighborhoodResponse is the similarity context of one anchor.
type NeighborhoodResponse struct {
	Anchor   string   `json:"anchor"`
	TrackIDs []string `json:"track_ids"`
}

// HealthResponse reports server readiness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Tracks    int       `json:"tracks"`
	Edges     int       `json:"edges"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
