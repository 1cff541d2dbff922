package helpers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records handler latency by method and route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "social_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SideEffectsTotal counts best-effort audit writes and email enqueues by outcome.
	SideEffectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_side_effects_total",
		Help: "Audit writes and email job publishes by kind and result",
	}, []string{"kind", "result"})

	// EmailJobsTotal counts jobs handled by the email worker by template and result.
	EmailJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_email_jobs_total",
		Help: "Email jobs consumed by the worker by template and result",
	}, []string{"template", "result"})
)

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveSideEffect records the outcome of an audit write or email publish.
func ObserveSideEffect(kind string, err error) {
	SideEffectsTotal.WithLabelValues(kind, resultLabel(err)).Inc()
}
