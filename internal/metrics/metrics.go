// Package metrics holds the Prometheus instruments of the highlight pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	NotConvergedTotal  prometheus.Counter
	ChunksSkippedTotal prometheus.Counter
	RankIterations     prometheus.Histogram
	Segments           prometheus.Histogram
	DurationSeconds    prometheus.Histogram
}

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "highlight_requests_total",
				Help: "Highlight requests by outcome",
			},
			[]string{"status"},
		),
		NotConvergedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "highlight_rank_not_converged_total",
			Help: "Centrality computations that hit the iteration cap",
		}),
		ChunksSkippedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "highlight_chunks_skipped_total",
			Help: "Transcript chunks dropped for missing or non-finite times",
		}),
		RankIterations: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "highlight_rank_iterations",
			Help:    "Power iterations per centrality computation",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		Segments: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "highlight_segments",
			Help:    "Highlight segments produced per request",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 20},
		}),
		DurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "highlight_duration_seconds",
			Help:    "Time spent producing highlights",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}),
	}
}

// Request records the outcome of one highlight request.
func (m *Metrics) Request(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(status).Inc()
	m.DurationSeconds.Observe(elapsed.Seconds())
}

// Rank records one centrality computation.
func (m *Metrics) Rank(iterations int, converged bool) {
	if m == nil {
		return
	}
	m.RankIterations.Observe(float64(iterations))
	if !converged {
		m.NotConvergedTotal.Inc()
	}
}

// Skipped counts chunks dropped at the transcript boundary.
func (m *Metrics) Skipped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.ChunksSkippedTotal.Add(float64(n))
}

// SegmentCount records the number of segments of one result.
func (m *Metrics) SegmentCount(n int) {
	if m == nil {
		return
	}
	m.Segments.Observe(float64(n))
}
