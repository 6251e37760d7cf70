// Package metrics exposes Prometheus instrumentation for the discovery
// engine and its HTTP shell.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the application.
type Registry struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Graph
	GraphTracks        prometheus.Gauge
	GraphEdges         prometheus.Gauge
	GraphDroppedEdges  prometheus.Gauge
	GraphBuildDuration prometheus.Histogram

	// Discovery
	PathSearchesTotal  *prometheus.CounterVec
	PathSearchDuration prometheus.Histogram
	PathHops           prometheus.Histogram
	NeighborhoodsTotal prometheus.Counter
	NeighborhoodSize   prometheus.Histogram
	SimilarityScores   prometheus.Counter
}

// NewRegistry creates a registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initHTTPMetrics()
	r.initEngineMetrics()
	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "resonance_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resonance_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "resonance_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initEngineMetrics() {
	r.GraphTracks = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "resonance_graph_tracks",
			Help: "Tracks in the current similarity graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "resonance_graph_edges",
			Help: "Undirected edges in the current similarity graph",
		},
	)

	r.GraphDroppedEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "resonance_graph_dropped_edges",
			Help: "Edges dropped during the last graph build for referencing unknown tracks",
		},
	)

	r.GraphBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resonance_graph_build_duration_seconds",
			Help:    "Time to rebuild the similarity graph",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.PathSearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "resonance_path_searches_total",
			Help: "Journey path searches by outcome",
		},
		[]string{"outcome"},
	)

	r.PathSearchDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resonance_path_search_duration_seconds",
			Help:    "Journey path search latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.PathHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resonance_path_hops",
			Help:    "Hop counts of successful journey paths",
			Buckets: []float64{1, 2, 5, 8, 10, 12, 15, 20, 25},
		},
	)

	r.NeighborhoodsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "resonance_neighborhoods_total",
			Help: "Neighborhood expansions served",
		},
	)

	r.NeighborhoodSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resonance_neighborhood_size",
			Help:    "Sizes of expanded similarity neighborhoods",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	r.SimilarityScores = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "resonance_similarity_scores_total",
			Help: "Pairwise similarity scores computed on demand",
		},
	)
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordGraphBuild records the outcome of a graph rebuild.
func (r *Registry) RecordGraphBuild(tracks, edges, dropped int, duration time.Duration) {
	r.GraphTracks.Set(float64(tracks))
	r.GraphEdges.Set(float64(edges))
	r.GraphDroppedEdges.Set(float64(dropped))
	r.GraphBuildDuration.Observe(duration.Seconds())
}

// RecordPathSearch records one journey search. hops is ignored unless the
// search succeeded.
func (r *Registry) RecordPathSearch(found bool, hops int, duration time.Duration) {
	outcome := "not_found"
	if found {
		outcome = "found"
		r.PathHops.Observe(float64(hops))
	}
	r.PathSearchesTotal.WithLabelValues(outcome).Inc()
	r.PathSearchDuration.Observe(duration.Seconds())
}

// RecordNeighborhood records one neighborhood expansion.
func (r *Registry) RecordNeighborhood(size int) {
	r.NeighborhoodsTotal.Inc()
	r.NeighborhoodSize.Observe(float64(size))
}

// Handler returns the /metrics HTTP handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
