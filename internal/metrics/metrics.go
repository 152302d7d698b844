// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Review submission outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

var (
	// ReviewSubmissionsTotal counts review submissions by outcome.
	ReviewSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookcritic_review_submissions_total",
			Help: "Total number of review submissions by outcome",
		},
		[]string{"outcome"},
	)

	// ReviewLikesTotal counts successful like increments.
	ReviewLikesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookcritic_review_likes_total",
			Help: "Total number of review likes recorded",
		},
	)

	// ChallengesTotal counts challenge verifications by result.
	ChallengesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookcritic_challenges_total",
			Help: "Total number of challenge verifications by result",
		},
		[]string{"result"},
	)

	// HTTPRequestsTotal counts responses by method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookcritic_http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		},
		[]string{"method", "code"},
	)

	// HTTPRequestDuration tracks request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookcritic_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// HTTPRequestsInFlight is the number of requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookcritic_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// RecordReviewSubmission increments the submission counter for outcome.
func RecordReviewSubmission(outcome string) {
	ReviewSubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordLike increments the like counter.
func RecordLike() {
	ReviewLikesTotal.Inc()
}

// RecordChallenge increments the challenge counter for a pass or a fail.
func RecordChallenge(passed bool) {
	result := "failed"
	if passed {
		result = "passed"
	}
	ChallengesTotal.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method string, code int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
