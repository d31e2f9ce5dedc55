package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type AppMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	taskOperations   *prometheus.CounterVec
	userOperations   *prometheus.CounterVec
	rateLimitHits    *prometheus.CounterVec
	rateLimitAllowed *prometheus.CounterVec
}

func NewAppMetrics(registry prometheus.Registerer) *AppMetrics {
	m := &AppMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		taskOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "task_operations_total",
				Help: "Total number of task operations",
			},
			[]string{"operation"},
		),
		userOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_operations_total",
				Help: "Total number of user operations",
			},
			[]string{"operation"},
		),
		rateLimitHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limit_hits_total",
				Help: "Total number of rate limit rejections",
			},
			[]string{"path", "key_type"},
		),
		rateLimitAllowed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limit_allowed_total",
				Help: "Total number of requests allowed by the rate limiter",
			},
			[]string{"path", "key_type"},
		),
	}

	registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.taskOperations,
		m.userOperations,
		m.rateLimitHits,
		m.rateLimitAllowed,
	)

	return m
}

func (m *AppMetrics) RecordRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)

	m.requestTotal.WithLabelValues(method, path, code).Inc()
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func (m *AppMetrics) RecordTaskOperation(operation string) {
	m.taskOperations.WithLabelValues(operation).Inc()
}

func (m *AppMetrics) RecordUserOperation(operation string) {
	m.userOperations.WithLabelValues(operation).Inc()
}

func (m *AppMetrics) RecordRateLimitHit(path, keyType string) {
	m.rateLimitHits.WithLabelValues(path, keyType).Inc()
}

func (m *AppMetrics) RecordRateLimitAllowed(path, keyType string) {
	m.rateLimitAllowed.WithLabelValues(path, keyType).Inc()
}
