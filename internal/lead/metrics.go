package lead

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_submissions_total",
		Help: "Lead form submissions by call type and result",
	}, []string{"call_type", "result"})

	apiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lead_api_request_duration_seconds",
		Help:    "Latency of requests to the call service",
		Buckets: prometheus.DefBuckets,
	}, []string{"call_type"})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_notifications_total",
		Help: "Lead notifications by channel and result",
	}, []string{"channel", "result"})
)

// Results recorded in lead_submissions_total.
const (
	resultSuccess     = "success"
	resultNotReady    = "not_ready"
	resultInvalid     = "invalid"
	resultInFlight    = "in_flight"
	resultRateLimited = "rate_limited"
	resultRejected    = "rejected"
	resultUnreachable = "unreachable"
)
