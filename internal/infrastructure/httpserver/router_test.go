package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
)

func TestDefaultRouterConfig(t *testing.T) {
	config := httpserver.DefaultRouterConfig()

	assert.Equal(t, "/api", config.APIPrefix)
	assert.NotNil(t, config.Logger)
}

func TestNewRouter_Groups(t *testing.T) {
	e := echo.New()
	authCalled := false
	config := httpserver.DefaultRouterConfig()
	config.AuthMiddleware = func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authCalled = true
			return next(c)
		}
	}

	r := httpserver.NewRouter(e, config)
	require.NotNil(t, r.Public())
	require.NotNil(t, r.Auth())

	r.Public().GET("/open", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	r.Auth().GET("/closed", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/open", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, authCalled, "public route must skip auth")

	req = httptest.NewRequest(http.MethodGet, "/api/closed", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, authCalled, "auth route must run auth middleware")
}

func TestRouter_HealthEndpoints(t *testing.T) {
	e := echo.New()
	r := httpserver.NewRouter(e, httpserver.DefaultRouterConfig())
	r.RegisterHealthEndpoints(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	// No checker configured means always ready.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	e := echo.New()
	r := httpserver.NewRouter(e, httpserver.DefaultRouterConfig())
	r.RegisterMetricsEndpoint()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_ServesUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "covers"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "covers", "x.jpg"), []byte("jpg"), 0o644))

	e := echo.New()
	config := httpserver.DefaultRouterConfig()
	config.UploadsDir = dir
	httpserver.NewRouter(e, config)

	req := httptest.NewRequest(http.MethodGet, "/uploads/covers/x.jpg", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpg", rec.Body.String())
}
