// Package config reads the service settings from the environment.
//
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Store backends.
const (
	BackendMemory  = "memory"
	BackendRedis   = "redis"
	BackendSpanner = "spanner"
)

// Default for local development with emulator
const defaultSpannerDB = "projects/test-project/instances/dev-instance/databases/backoffice-db"

// Config holds application configuration.
type Config struct {
	HTTPPort           string
	StoreBackend       string
	RedisAddress       string
	RedisPassword      string
	RedisDB            int
	SpannerDB          string
	KeyPrefix          string
	MissingProduct     domain.MissingProductPolicy
	LogLevel           string
	CORSAllowedOrigins []string
	Environment        string
}

// IsProduction reports whether GO_ENV is production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads .env (if any) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv loads configuration from environment variables with defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPPort:      getenv("HTTP_PORT", "8080"),
		StoreBackend:  strings.ToLower(getenv("STORE_BACKEND", BackendMemory)),
		RedisAddress:  getenv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SpannerDB:     getenv("SPANNER_DATABASE", defaultSpannerDB),
		KeyPrefix:     os.Getenv("STORE_KEY_PREFIX"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		Environment:   getenv("GO_ENV", "development"),
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendRedis, BackendSpanner:
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			return Config{}, fmt.Errorf("invalid REDIS_DB %q", raw)
		}
		cfg.RedisDB = db
	}

	policy, err := domain.ParseMissingProductPolicy(strings.ToLower(os.Getenv("SALE_MISSING_PRODUCT")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SALE_MISSING_PRODUCT: %w", err)
	}
	cfg.MissingProduct = policy

	cfg.CORSAllowedOrigins = splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if cfg.IsProduction() && len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, errors.New("CORS_ALLOWED_ORIGINS is required in production")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
