package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// OrganizerAPIURL is the base URL of the remote event-organizer service.
	OrganizerAPIURL string
	// OrganizerAPITimeout caps each remote call.
	OrganizerAPITimeout time.Duration
	// AggregationConcurrency bounds the participant fan-out.
	AggregationConcurrency int
	// CompanyID scopes bulk invitation batches.
	CompanyID int64
	// CORSOrigins is the comma-separated allow list; "*" allows any origin.
	CORSOrigins string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually does not exist and the process
	// environment is authoritative, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:            env,
		Port:                   os.Getenv("PORT"),
		OrganizerAPIURL:        os.Getenv("ORGANIZER_API_URL"),
		OrganizerAPITimeout:    durationEnv("ORGANIZER_API_TIMEOUT", 10*time.Second),
		AggregationConcurrency: intEnv("AGGREGATION_CONCURRENCY", 8),
		CompanyID:              int64Env("COMPANY_ID", 0),
		CORSOrigins:            os.Getenv("CORS_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.OrganizerAPIURL == "" {
		cfg.OrganizerAPIURL = "http://localhost:9000"
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			return d
		}
		log.Printf("Warning: invalid %s, using %s", key, fallback)
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
		log.Printf("Warning: invalid %s, using %d", key, fallback)
	}
	return fallback
}

func int64Env(key string, fallback int64) int64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
		log.Printf("Warning: invalid %s, using %d", key, fallback)
	}
	return fallback
}
