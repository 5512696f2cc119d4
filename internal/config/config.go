package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	StylecastAPIKey string

	// Upload limits
	MaxUploadBytes int64

	// Loaded-document registry
	MaxDocuments int
	DocTTL       time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		StylecastAPIKey: os.Getenv("STYLECAST_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 26214400), // 25MB

		MaxDocuments: envInt("MAX_DOCUMENTS", 64),
		DocTTL:       envDuration("DOC_TTL", 4*time.Hour),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 26214400
	}
	if cfg.MaxDocuments <= 0 {
		cfg.MaxDocuments = 64
	}
	if cfg.DocTTL <= 0 {
		cfg.DocTTL = 4 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.StylecastAPIKey == "" {
		return fmt.Errorf("STYLECAST_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
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
