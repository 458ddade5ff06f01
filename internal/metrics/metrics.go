// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Auth event outcomes.
const (
	EventLoginSuccess  = "login_success"
	EventLoginFailure  = "login_failure"
	EventRegistered    = "registered"
	EventRegisterError = "register_failure"
	EventTokenRejected = "token_rejected"
	EventForbidden     = "forbidden"
)

// Metrics holds the service collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	AuthEvents      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "progress_api",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "progress_api",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "progress_api",
				Name:      "auth_events_total",
				Help:      "Authentication and authorization outcomes.",
			},
			[]string{"event"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.AuthEvents)
	return m
}

// AuthEvent increments the counter for event. Safe on a nil receiver.
func (m *Metrics) AuthEvent(event string) {
	if m == nil {
		return
	}
	m.AuthEvents.WithLabelValues(event).Inc()
}
