package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransition(t *testing.T) {
	initialSuccess := testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("approve", "success"))
	initialFailure := testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("approve", "failure"))

	ObserveTransition("approve", nil)
	ObserveTransition("approve", errors.New("boom"))

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("approve", "success")))
	assert.Equal(t, initialFailure+1, testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("approve", "failure")))
}

func TestObservePublish(t *testing.T) {
	initialSuccess := testutil.ToFloat64(PortalPublishesTotal.WithLabelValues("bayut", "success"))
	initialFailure := testutil.ToFloat64(PortalPublishesTotal.WithLabelValues("bayut", "failure"))

	ObservePublish("bayut", nil)
	ObservePublish("bayut", errors.New("not ready"))

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(PortalPublishesTotal.WithLabelValues("bayut", "success")))
	assert.Equal(t, initialFailure+1, testutil.ToFloat64(PortalPublishesTotal.WithLabelValues("bayut", "failure")))
}

func TestHTTPMetricsExist(t *testing.T) {
	// Verify HTTP metrics are properly initialized
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	// Increment and verify
	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestDBConnectionPoolSizeMetric(t *testing.T) {
	// Verify DB pool metric exists and can be set
	DBConnectionPoolSize.WithLabelValues("total").Set(10)
	DBConnectionPoolSize.WithLabelValues("idle").Set(5)
	DBConnectionPoolSize.WithLabelValues("in_use").Set(5)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

// fakePoolStats implements PoolStats for testing
type fakePoolStats struct {
	total, idle, acquired int32
}

func (s fakePoolStats) TotalConns() int32    { return s.total }
func (s fakePoolStats) IdleConns() int32     { return s.idle }
func (s fakePoolStats) AcquiredConns() int32 { return s.acquired }

// fakeStatsProvider implements PoolStatsProvider for testing
type fakeStatsProvider struct {
	stats fakePoolStats
}

func (p *fakeStatsProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeStatsProvider{stats: fakePoolStats{total: 8, idle: 3, acquired: 5}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(8), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestTimer(t *testing.T) {
	timer := NewTimer()

	time.Sleep(10 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_histogram",
		Help:    "Test histogram for timer",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})

	timer.ObserveDuration(testHistogram)
}
