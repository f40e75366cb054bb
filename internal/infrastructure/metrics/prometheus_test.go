package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RelayCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.EventPublished("STATUS_UPDATED")
	m.EventPublished("STATUS_UPDATED")
	m.EventFailed("ASSIGNED", false)
	m.EventFailed("ASSIGNED", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("STATUS_UPDATED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsFailed.WithLabelValues("ASSIGNED", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsFailed.WithLabelValues("ASSIGNED", "false")))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTP("/api/v1/complaints/:id", "GET", 200, 15*time.Millisecond)
	m.ObserveHTTP("/api/v1/complaints/:id", "GET", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/v1/complaints/:id", "GET", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPDuration))
}

func TestNew_RejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
