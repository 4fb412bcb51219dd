package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth; empty disables authentication.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Stored analyses
	AnalysisTTL time.Duration

	// Generation
	DefaultTemplate string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOC2TEX_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		AnalysisTTL: envDuration("ANALYSIS_TTL", 1*time.Hour),

		DefaultTemplate: envOr("DEFAULT_TEMPLATE", "ieee"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.AnalysisTTL <= 0 {
		cfg.AnalysisTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	switch c.DefaultTemplate {
	case "ieee", "acm", "springer":
	default:
		return fmt.Errorf("DEFAULT_TEMPLATE must be one of ieee, acm, springer; got %q", c.DefaultTemplate)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
