// Package prometheus provides Prometheus metrics for conversation
// sessions and provider calls.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "roundtable"

var (
	// providerRequestDuration is a histogram of LLM provider API call duration.
	providerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of LLM provider API calls in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// providerRequestsTotal is a counter of provider API calls.
	providerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Total number of provider API calls",
		},
		[]string{"provider", "status"}, // status: success, error
	)

	// turnsTotal counts scheduled turns by kind.
	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Total number of conversation turns by kind",
		},
		[]string{"kind"}, // kind: primary, interruption, apology, intervention
	)

	// sessionsActive is a gauge of currently running sessions.
	sessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of currently running conversation sessions",
		},
	)

	// sessionDuration is a histogram of whole-session duration.
	sessionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Histogram of total conversation session duration in seconds",
			Buckets:   []float64{1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"status"}, // status: success, error
	)

	// judgeScore records the most recent judge sub-scores.
	judgeScore = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "judge_score",
			Help:      "Most recent judge evaluation sub-score",
		},
		[]string{"metric"},
	)

	// allMetrics is a list of all metrics for registration.
	allMetrics = []prometheus.Collector{
		providerRequestDuration,
		providerRequestsTotal,
		turnsTotal,
		sessionsActive,
		sessionDuration,
		judgeScore,
	}
)

// RecordProviderRequest records a provider API call.
func RecordProviderRequest(provider, status string, durationSeconds float64) {
	providerRequestDuration.WithLabelValues(provider).Observe(durationSeconds)
	providerRequestsTotal.WithLabelValues(provider, status).Inc()
}

// RecordTurn records one scheduled turn of the given kind.
func RecordTurn(kind string) {
	turnsTotal.WithLabelValues(kind).Inc()
}

// RecordSessionStart records a session start.
func RecordSessionStart() {
	sessionsActive.Inc()
}

// RecordSessionEnd records a session completion.
func RecordSessionEnd(status string, durationSeconds float64) {
	sessionsActive.Dec()
	sessionDuration.WithLabelValues(status).Observe(durationSeconds)
}

// RecordJudgeScore records one judge sub-score.
func RecordJudgeScore(metric string, score float64) {
	judgeScore.WithLabelValues(metric).Set(score)
}
