package config

import "os"

const (
	defaultHTTPAddr    = ":8080"
	defaultDatabaseURL = "callbook.db"
)

type Config struct {
	HTTPAddr           string
	DatabaseURL        string
	CORSAllowedOrigins string
}

// Load reads runtime configuration from the environment, falling back to
// local-development defaults.
func Load() *Config {
	return &Config{
		HTTPAddr:           getenv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:        getenv("DATABASE_URL", defaultDatabaseURL),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
