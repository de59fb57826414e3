package httpserver_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
)

func TestDefaultServerConfig(t *testing.T) {
	config := httpserver.DefaultServerConfig()

	assert.Equal(t, httpserver.DefaultHost, config.Host)
	assert.Equal(t, httpserver.DefaultPort, config.Port)
	assert.Equal(t, httpserver.DefaultReadTimeout, config.ReadTimeout)
	assert.Equal(t, httpserver.DefaultWriteTimeout, config.WriteTimeout)
	assert.Equal(t, httpserver.DefaultShutdownTimeout, config.ShutdownTimeout)
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name   string
		config httpserver.ServerConfig
		logger *slog.Logger
	}{
		{
			name:   "with default config and nil logger",
			config: httpserver.DefaultServerConfig(),
			logger: nil,
		},
		{
			name: "with custom config",
			config: httpserver.ServerConfig{
				Host:            "127.0.0.1",
				Port:            9090,
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				ShutdownTimeout: time.Second,
			},
			logger: slog.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httpserver.NewServer(tt.config, tt.logger)

			require.NotNil(t, server)
			require.NotNil(t, server.Echo())
			assert.True(t, server.Echo().HideBanner)
			assert.Equal(t, tt.config.ReadTimeout, server.Echo().Server.ReadTimeout)
		})
	}
}

func TestServerAddress(t *testing.T) {
	config := httpserver.DefaultServerConfig()
	config.Host = "localhost"
	config.Port = 4040

	server := httpserver.NewServer(config, nil)

	assert.Equal(t, "localhost:4040", server.Address())
}
