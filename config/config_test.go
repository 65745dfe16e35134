package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"PORT", "STORE_BACKEND", "STORE_MEMORY_SIZE", "STORE_TTL", "REDIS_URL",
	"SQLITE_PATH", "DATABASE_URL", "DATABASE_URL_FILE", "SHELL_TTL",
	"COOKIE_SECURE", "METRICS_SECRET", "METRICS_SECRET_FILE", "LOGIN_RATE_PER_MIN", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		check       func(t *testing.T, c *Config)
		errContains string
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "8890", c.Port)
				assert.Equal(t, BackendMemory, c.StoreBackend)
				assert.Equal(t, 10000, c.StoreMemorySize)
				assert.Equal(t, 24*time.Hour, c.StoreTTL)
				assert.Equal(t, "redis://localhost:6379/0", c.RedisURL)
				assert.Equal(t, "lms-hub.db", c.SQLitePath)
				assert.Equal(t, 30*time.Minute, c.ShellTTL)
				assert.False(t, c.CookieSecure)
				assert.Empty(t, c.MetricsSecret)
				assert.Equal(t, 30, c.LoginRatePerMin)
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"PORT":               "9999",
				"STORE_BACKEND":      "Redis",
				"STORE_TTL":          "0",
				"SHELL_TTL":          "10m",
				"COOKIE_SECURE":      "true",
				"LOGIN_RATE_PER_MIN": "5",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "9999", c.Port)
				assert.Equal(t, BackendRedis, c.StoreBackend)
				assert.Zero(t, c.StoreTTL)
				assert.Equal(t, 10*time.Minute, c.ShellTTL)
				assert.True(t, c.CookieSecure)
				assert.Equal(t, 5, c.LoginRatePerMin)
			},
		},
		{
			name:        "invalid shell TTL format",
			env:         map[string]string{"SHELL_TTL": "soon"},
			errContains: "invalid SHELL_TTL",
		},
		{
			name:        "invalid memory size",
			env:         map[string]string{"STORE_MEMORY_SIZE": "lots"},
			errContains: "invalid STORE_MEMORY_SIZE",
		},
		{
			name:        "invalid cookie flag",
			env:         map[string]string{"COOKIE_SECURE": "maybe"},
			errContains: "invalid COOKIE_SECURE",
		},
		{
			name:        "postgres without dsn",
			env:         map[string]string{"STORE_BACKEND": "postgres"},
			errContains: "DATABASE_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestLoad_FileIndirection(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "metrics_secret")
	require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o600))
	t.Setenv("METRICS_SECRET", "ignored")
	t.Setenv("METRICS_SECRET_FILE", path)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got.MetricsSecret)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            "8890",
			StoreBackend:    BackendMemory,
			StoreMemorySize: 100,
			ShellTTL:        time.Minute,
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		errContains string
	}{
		{"valid configuration", func(*Config) {}, ""},
		{"postgres with dsn", func(c *Config) {
			c.StoreBackend = BackendPostgres
			c.DatabaseURL = "postgres://lms@localhost/lms"
		}, ""},
		{"missing port", func(c *Config) { c.Port = "" }, "PORT"},
		{"unknown backend", func(c *Config) { c.StoreBackend = "etcd" }, "STORE_BACKEND"},
		{"negative store size", func(c *Config) { c.StoreMemorySize = -1 }, "STORE_MEMORY_SIZE"},
		{"negative store ttl", func(c *Config) { c.StoreTTL = -time.Second }, "STORE_TTL"},
		{"zero shell ttl", func(c *Config) { c.ShellTTL = 0 }, "SHELL_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
