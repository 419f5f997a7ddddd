package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Latency: LatencyConfig{
			Min: 10 * time.Millisecond,
			Max: 100 * time.Millisecond,
		},
		Client: ClientConfig{
			BaseURL:         "http://localhost:5000",
			Timeout:         5 * time.Second,
			MaxResponseTime: 500 * time.Millisecond,
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, 10*time.Millisecond, cfg.Latency.Min)
	assert.Equal(t, 100*time.Millisecond, cfg.Latency.Max)
	assert.Equal(t, "http://localhost:5000", cfg.Client.BaseURL)
	assert.Equal(t, "test_api_key_12345", cfg.Client.APIKey)
	assert.Equal(t, uint(30), cfg.Client.HealthRetries)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "paysim-1", cfg.InstanceID)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PAYSIM_SERVER_PORT", "8080")
	t.Setenv("PAYSIM_INSTANCE_ID", "paysim-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "paysim-test", cfg.InstanceID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "read timeout not positive",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "server.read_timeout",
		},
		{
			name:    "write timeout not positive",
			mutate:  func(c *Config) { c.Server.WriteTimeout = 0 },
			wantErr: "server.write_timeout",
		},
		{
			name:    "negative latency min",
			mutate:  func(c *Config) { c.Latency.Min = -time.Millisecond },
			wantErr: "latency.min",
		},
		{
			name: "latency max below min",
			mutate: func(c *Config) {
				c.Latency.Min = 100 * time.Millisecond
				c.Latency.Max = 10 * time.Millisecond
			},
			wantErr: "latency.max",
		},
		{
			name:    "missing client base url",
			mutate:  func(c *Config) { c.Client.BaseURL = "" },
			wantErr: "client.base_url",
		},
		{
			name:    "client timeout not positive",
			mutate:  func(c *Config) { c.Client.Timeout = 0 },
			wantErr: "client.timeout",
		},
		{
			name:    "max response time not positive",
			mutate:  func(c *Config) { c.Client.MaxResponseTime = 0 },
			wantErr: "client.max_response_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Client.BaseURL = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "client.base_url")
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := ServerConfig{Port: 5000}
	assert.Equal(t, ":5000", cfg.Addr())
}
