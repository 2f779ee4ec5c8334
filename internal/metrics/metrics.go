// Package metrics holds the process's Prometheus collectors, exposed at
// GET /metrics/prometheus in addition to the spec's plain-JSON /metrics
// cache-stats contract. Adapted from the pack's metrics.RegisterCollectors
// pattern (one CounterVec/HistogramVec per cross-cutting concern, registered
// once at startup).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "resumegen"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Requests allowed by the rate limiter, by backend."},
		[]string{"backend"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter, by backend."},
		[]string{"backend"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_hits_total", Help: "Document cache hits, by tier."},
		[]string{"tier"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_misses_total", Help: "Document cache misses, by tier."},
		[]string{"tier"},
	)

	CompilationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "typst_compilation_seconds", Help: "Typst compiler subprocess duration."},
		[]string{"outcome"},
	)

	JobQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "job_queue_depth", Help: "Number of jobs currently buffered in the async queue."},
	)
	JobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "jobs_processed_total", Help: "Async jobs processed, by terminal state."},
		[]string{"state"},
	)

	RenderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "render_requests_total", Help: "Render requests, by document type and outcome."},
		[]string{"document_type", "outcome"},
	)
)

// RegisterCollectors registers every collector above with reg. Call once
// at startup before serving /metrics/prometheus.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(
		RateLimitAllowed,
		RateLimitRejected,
		CacheHits,
		CacheMisses,
		CompilationDuration,
		JobQueueDepth,
		JobsProcessed,
		RenderRequests,
	)
}
