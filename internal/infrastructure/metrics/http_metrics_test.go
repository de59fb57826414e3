package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfshare/shelfshare/internal/infrastructure/metrics"
)

func TestNewHTTPMetrics_Registration(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := metrics.NewHTTPMetrics(registry)

	require.NotNil(t, m.RequestsTotal)
	require.NotNil(t, m.RequestDuration)

	// Registering the same metrics twice must panic via MustRegister.
	assert.Panics(t, func() {
		metrics.NewHTTPMetrics(registry)
	})
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(registry)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/books/:id/like", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/books/42/like", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// The path label is the route pattern, not the raw URL.
	count := testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues("GET", "/api/books/:id/like", "200"))
	assert.InDelta(t, 3.0, count, 0.001)
}

func TestHTTPMetrics_Middleware_CountsErrors(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(registry)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/boom", func(c echo.Context) error {
		return c.NoContent(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/boom", "500"))
	assert.InDelta(t, 1.0, count, 0.001)
}
