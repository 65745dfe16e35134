package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends accepted by STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port            string        // Service port
	StoreBackend    string        // Session storage backend
	StoreMemorySize int           // Max entries of the memory backend
	StoreTTL        time.Duration // Entry lifetime for memory/redis, 0 keeps forever
	RedisURL        string        // redis backend address
	SQLitePath      string        // sqlite backend file
	DatabaseURL     string        // postgres backend DSN
	ShellTTL        time.Duration // Idle lifetime of a browser shell
	CookieSecure    bool          // Secure flag on the session cookie
	MetricsSecret   string        // Shared secret guarding /metrics
	LoginRatePerMin int           // Login attempts per IP per minute
	LogLevel        string
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{
		Port:          getEnv("PORT", "8890"),
		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SQLitePath:    getEnv("SQLITE_PATH", "lms-hub.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		MetricsSecret: getEnv("METRICS_SECRET", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if config.StoreMemorySize, err = getInt("STORE_MEMORY_SIZE", 10000); err != nil {
		return nil, err
	}
	if config.LoginRatePerMin, err = getInt("LOGIN_RATE_PER_MIN", 30); err != nil {
		return nil, err
	}
	if config.StoreTTL, err = getDuration("STORE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if config.ShellTTL, err = getDuration("SHELL_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if config.CookieSecure, err = getBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	switch c.StoreBackend {
	case BackendMemory, BackendRedis, BackendSQLite:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.StoreMemorySize < 0 {
		return fmt.Errorf("STORE_MEMORY_SIZE cannot be negative")
	}
	if c.StoreTTL < 0 {
		return fmt.Errorf("STORE_TTL cannot be negative")
	}
	if c.ShellTTL <= 0 {
		return fmt.Errorf("SHELL_TTL must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a fallback value.
// KEY_FILE takes precedence and names a file holding the value.
func getEnv(key, fallback string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %w", key, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
