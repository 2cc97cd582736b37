package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.ObserveUpstream("textsearch", time.Now(), nil)
	m.ObserveUpstream("textsearch", time.Now(), errors.New("boom"))
	m.CountSearch("ok")
	m.CountDetailCache(true)
	m.CountDetailCache(false)
	m.CountDetailCache(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("textsearch", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.detailCache.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("ok")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodmap_upstream_requests_total")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpstream("geocode", time.Now(), nil)
		m.CountSearch("ok")
		m.CountDetailCache(true)
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, m.Instrument(next))
}
