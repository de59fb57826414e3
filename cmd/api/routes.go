// Package main provides the API server entry point.
package main

import (
	"github.com/labstack/echo/v4"

	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
	"github.com/shelfshare/shelfshare/internal/middleware"
)

// SetupRoutes configures all API routes and middleware chains.
func SetupRoutes(c *Container) *httpserver.Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	routerConfig := httpserver.RouterConfig{
		Logger: c.Logger,
		AuthMiddleware: middleware.Auth(middleware.AuthConfig{
			Logger:        c.Logger,
			TokenVerifier: c.Tokens,
			UserLoader:    c.UserLoader(),
		}),
		CORSConfig:     middleware.DefaultCORSConfig(),
		LoggingConfig:  middleware.DefaultLoggingConfig(),
		RecoveryConfig: middleware.DefaultRecoveryConfig(),
		APIPrefix:      "/api",
		UploadsDir:     c.Config.Storage.UploadsDir,
	}

	router := httpserver.NewRouter(e, routerConfig)

	if c.HTTPMetrics != nil {
		e.Use(c.HTTPMetrics.Middleware())
	}

	// Container implements httpserver.HealthChecker.
	router.RegisterHealthEndpoints(c)
	router.RegisterMetricsEndpoint()

	c.AuthHandler.RegisterRoutes(router)
	c.BookHandler.RegisterRoutes(router)

	return router
}
