package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port          string
	Env           string
	StoreBackend  string
	DBSource      string
	RedisAddr     string
	RedisPassword string

	DefaultLanguage string
	ThinkingDelay   time.Duration

	// Vocabularies are configuration, not code, so the engine works against
	// a different bill catalog or confirmation phrasing.
	BillCategories    []string
	AffirmativeTokens []string
	NegativeTokens    []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("SERVER_PORT", "8080"),
		Env:               getEnv("ENVIRONMENT", "development"),
		StoreBackend:      getEnv("STORE_BACKEND", BackendMemory),
		DBSource:          os.Getenv("DB_SOURCE"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		DefaultLanguage:   getEnv("DEFAULT_LANGUAGE", "en-US"),
		BillCategories:    splitList(getEnv("BILL_CATEGORIES", "electricity,internet,water,mobile")),
		AffirmativeTokens: splitList(getEnv("CONFIRM_TOKENS", "yes,confirm,y")),
		NegativeTokens:    splitList(getEnv("CANCEL_TOKENS", "no,cancel,n")),
	}

	delay := getEnv("THINKING_DELAY", "1s")
	d, err := time.ParseDuration(delay)
	if err != nil {
		return nil, fmt.Errorf("invalid THINKING_DELAY %q: %w", delay, err)
	}
	cfg.ThinkingDelay = d

	switch cfg.StoreBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if cfg.DBSource == "" {
			return nil, fmt.Errorf("DB_SOURCE environment variable is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
