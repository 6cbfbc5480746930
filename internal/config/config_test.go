package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"REDIS_ADDR",
		"AUTH_SECRET",
		"PORTAL_API_BASE_URL",
		"PORTAL_API_TIMEOUT",
		"LOCATION_CACHE_TTL",
		"LOG_LEVEL",
		"LOG_FORMAT",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "estateflow" {
			t.Errorf("DBName = %v, want estateflow", cfg.DBName)
		}
		if cfg.DBSSLMode != "disable" {
			t.Errorf("DBSSLMode = %v, want disable", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.RedisAddr != "" {
			t.Errorf("RedisAddr = %v, want empty", cfg.RedisAddr)
		}
		if cfg.AuthSecret != "" {
			t.Errorf("AuthSecret = %v, want empty", cfg.AuthSecret)
		}
		if cfg.PortalAPIBaseURL != "https://api.portals.estateflow.ae" {
			t.Errorf("PortalAPIBaseURL = %v, want https://api.portals.estateflow.ae", cfg.PortalAPIBaseURL)
		}
		if cfg.LocationCacheTTL != 6*time.Hour {
			t.Errorf("LocationCacheTTL = %v, want 6h", cfg.LocationCacheTTL)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.LogFormat != "json" {
			t.Errorf("LogFormat = %v, want json", cfg.LogFormat)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "testuser")
		os.Setenv("DB_PASSWORD", "testpass")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("DB_SSL_MODE", "require")
		os.Setenv("DB_MAX_CONNS", "50")
		os.Setenv("DB_MIN_CONNS", "10")
		os.Setenv("REDIS_ADDR", "localhost:6379")
		os.Setenv("AUTH_SECRET", "topsecret")
		os.Setenv("PORTAL_API_BASE_URL", "https://portals.test")
		os.Setenv("PORTAL_API_TIMEOUT", "5s")
		os.Setenv("LOCATION_CACHE_TTL", "30m")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("LOG_FORMAT", "text")

		defer func() {
			for _, env := range envVars {
				os.Unsetenv(env)
			}
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBUser != "testuser" {
			t.Errorf("DBUser = %v, want testuser", cfg.DBUser)
		}
		if cfg.DBName != "testdb" {
			t.Errorf("DBName = %v, want testdb", cfg.DBName)
		}
		if cfg.DBSSLMode != "require" {
			t.Errorf("DBSSLMode = %v, want require", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
		if cfg.RedisAddr != "localhost:6379" {
			t.Errorf("RedisAddr = %v, want localhost:6379", cfg.RedisAddr)
		}
		if cfg.AuthSecret != "topsecret" {
			t.Errorf("AuthSecret = %v, want topsecret", cfg.AuthSecret)
		}
		if cfg.PortalAPIBaseURL != "https://portals.test" {
			t.Errorf("PortalAPIBaseURL = %v, want https://portals.test", cfg.PortalAPIBaseURL)
		}
		if cfg.PortalAPITimeout != 5*time.Second {
			t.Errorf("PortalAPITimeout = %v, want 5s", cfg.PortalAPITimeout)
		}
		if cfg.LocationCacheTTL != 30*time.Minute {
			t.Errorf("LocationCacheTTL = %v, want 30m", cfg.LocationCacheTTL)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
		}
		if cfg.LogFormat != "text" {
			t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
		}
	})

	t.Run("invalid cache ttl", func(t *testing.T) {
		os.Setenv("LOCATION_CACHE_TTL", "-1h")
		defer os.Unsetenv("LOCATION_CACHE_TTL")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for negative LOCATION_CACHE_TTL")
		}
	})

	t.Run("invalid int falls back to default", func(t *testing.T) {
		os.Setenv("DB_PORT", "not-a-number")
		defer os.Unsetenv("DB_PORT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
	})
}
