package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_match_runs_total",
			Help: "Total number of questionnaire match runs",
		},
		[]string{"outcome"},
	)

	MatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shelter_match_candidates",
			Help:    "Animals surviving the hard filters per match run",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shelter_match_duration_seconds",
			Help:    "Duration of a match run (catalog load + scoring) in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
