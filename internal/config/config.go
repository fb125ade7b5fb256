package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything main needs to wire the process: the HTTP
// port, the store backend selection, and token settings.
type Config struct {
	Port string

	// StoreBackend selects where the three collections live:
	// "memory" (default), "postgres", or "redis".
	StoreBackend string

	// Postgres
	DatabaseDSN string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	TokenTTL time.Duration

	AllowedOrigins []string
}

// Load reads the configuration from the environment with development
// defaults. A missing JWT secret is handled by the middleware, which
// refuses to start in release mode without one.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", "memory"),
		DatabaseDSN:   buildDSN(),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))

	ttlHours, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	cfg.AllowedOrigins = []string{
		getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
	}

	return cfg
}

func buildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return "postgres://" + getEnv("DB_USER", "postgres") +
		":" + getEnv("DB_PASSWORD", "postgres") +
		"@" + getEnv("DB_HOST", "localhost") +
		":" + getEnv("DB_PORT", "5432") +
		"/" + getEnv("DB_NAME", "postgres") +
		"?sslmode=" + getEnv("DB_SSLMODE", "disable")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
