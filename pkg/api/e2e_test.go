package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/discovery"
	"github.com/auralab/resonance/pkg/metrics"
)

const e2eGalaxy = `{
  "tracks": [
    {"track_id": "intro", "position": {"x": 0, "y": 0, "z": 0},
     "coordinates": {"valence": 0.9, "energy": 0.8, "complexity": 0.2, "tension": 0.1},
     "genetic_vectors": {"harmonic": [1, 0, 0], "rhythmic": [0, 1, 0]},
     "metadata": {"title": "Intro", "artist": "Opener"}},
    {"track_id": "bridge", "position": {"x": 5, "y": 0, "z": 0},
     "coordinates": {"valence": 0.7, "energy": 0.6, "complexity": 0.4, "tension": 0.3},
     "genetic_vectors": {"harmonic": [0.9, 0.1, 0], "rhythmic": [0.1, 0.9, 0]}},
    {"track_id": "outro", "position": {"x": 10, "y": 0, "z": 0},
     "coordinates": {"valence": 0.3, "energy": 0.2, "complexity": 0.6, "tension": 0.5},
     "metadata": {"title": "Outro", "artist": "Closer"}}
  ],
  "connections": [
    {"source": "intro", "target": "bridge", "weight": 0.85},
    {"source": "bridge", "target": "outro", "similarity": 0.6}
  ]
}`

// TestListeningSessionWorkflow tests a complete user session: load the
// galaxy, inspect a track, rank its relatives, plan a journey, and render
// its flow path
func TestListeningSessionWorkflow(t *testing.T) {
	c, edges, err := catalog.LoadGalaxy(strings.NewReader(e2eGalaxy))
	require.NoError(t, err)

	engine := discovery.NewEngine(nil, nil, nil)
	engine.LoadGraph(c, edges)

	server := httptest.NewServer(NewServer(engine, metrics.NewRegistry(), nil).Handler())
	defer server.Close()

	// Step 1: the frontend loads the full galaxy.
	var galaxy GalaxyResponse
	getJSON(t, server.URL+"/api/galaxy", &galaxy)
	require.Len(t, galaxy.Tracks, 3)
	require.Len(t, galaxy.Connections, 2)

	// Step 2: the user searches for a track by title.
	var hits []TrackResponse
	getJSON(t, server.URL+"/api/search?q=intro", &hits)
	require.Len(t, hits, 1)
	assert.Equal(t, "intro", hits[0].ID)
	assert.NotEmpty(t, hits[0].UUID)

	// Step 3: similar-tracks ranking for the found track.
	var similar []SimilarTrackResponse
	getJSON(t, server.URL+"/api/tracks/intro/similar?limit=2", &similar)
	require.Len(t, similar, 2)
	assert.Equal(t, "bridge", similar[0].Track.ID,
		"bridge shares vectors and close coordinates with intro")
	assert.GreaterOrEqual(t, similar[0].Similarity, similar[1].Similarity)

	// Step 4: plan a journey across the graph.
	journeyBody, err := json.Marshal(JourneyRequest{
		StartTrack: "intro",
		EndTrack:   "outro",
	})
	require.NoError(t, err)
	resp, err := http.Post(server.URL+"/api/journey", "application/json", bytes.NewReader(journeyBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var journey JourneyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&journey))
	require.True(t, journey.Found)
	assert.Equal(t, []string{"intro", "bridge", "outro"}, journey.Path)
	assert.Equal(t, 2, journey.Hops)

	// Step 5: render the journey as a flow path.
	flowBody, err := json.Marshal(FlowPathRequest{TrackIDs: journey.Path, Segments: 4})
	require.NoError(t, err)
	flowResp, err := http.Post(server.URL+"/api/flowpath", "application/json", bytes.NewReader(flowBody))
	require.NoError(t, err)
	defer flowResp.Body.Close()
	require.Equal(t, http.StatusOK, flowResp.StatusCode)

	var flow FlowPathResponse
	require.NoError(t, json.NewDecoder(flowResp.Body).Decode(&flow))
	assert.Len(t, flow.Points, 10, "two segments of five points each")
	assert.Equal(t, 0.0, flow.Points[0].X)
	assert.Equal(t, 10.0, flow.Points[len(flow.Points)-1].X)

	// Step 6: the metrics endpoint reflects the session.
	metricsResp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
