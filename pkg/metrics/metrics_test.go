package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/pkg/metrics"
)

func TestObserveMutation(t *testing.T) {
	m := metrics.New("test")
	m.ObserveMutation("transfer_stock", "ok")
	m.ObserveMutation("transfer_stock", "ok")
	m.ObserveMutation("transfer_stock", "insufficient_stock")

	n, err := testutil.GatherAndCount(m.Registry(), "test_inventory_mutations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "dos series: ok e insufficient_stock")
}

func TestHandler_ExponeMetricas(t *testing.T) {
	m := metrics.New("test")
	m.ObserveRequest(http.MethodGet, "/api/products", http.StatusOK, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",route="/api/products",status="200"} 1`)
}
