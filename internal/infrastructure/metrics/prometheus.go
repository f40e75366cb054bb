// Package metrics exposes Prometheus collectors for the relay and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	EventsPublished *prometheus.CounterVec
	EventsFailed    *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New registers all collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "complaintdesk_outbox_events_published_total",
				Help: "Outbox events delivered by the relay, by event type",
			},
			[]string{"event_type"},
		),
		EventsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "complaintdesk_outbox_events_failed_total",
				Help: "Failed outbox deliveries, by event type and whether the row went dead",
			},
			[]string{"event_type", "dead"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "complaintdesk_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "complaintdesk_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}

	reg.MustRegister(m.EventsPublished, m.EventsFailed, m.HTTPRequests, m.HTTPDuration)
	return m
}

func (m *Metrics) EventPublished(eventType string) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

func (m *Metrics) EventFailed(eventType string, dead bool) {
	m.EventsFailed.WithLabelValues(eventType, strconv.FormatBool(dead)).Inc()
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
