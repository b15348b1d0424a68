package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitten/backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ProxyRequest("ok")
	m.ProxyRequest("ok")
	m.ProxyRequest("quota_exceeded")
	m.AIAttempt("x-ai/grok-4-fast:free", "retryable")
	m.AIRequest("chat", "ok")
	m.HTTPRequest(http.MethodGet, http.StatusOK)
	m.UpstreamLatency("nitter.net", 150*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "kitten_proxy_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "kitten_proxy_upstream_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ProxyRequest("ok")
		m.AIAttempt("model", "ok")
		m.AIRequest("chat", "ok")
		m.HTTPRequest(http.MethodGet, 200)
		m.UpstreamLatency("host", time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(nil)
	m.ProxyRequest("denied")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `kitten_proxy_requests_total{result="denied"} 1`)
	require.Contains(t, string(body), "go_goroutines")
}
