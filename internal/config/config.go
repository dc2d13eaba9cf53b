package config

import (
	"os"
	"strings"
)

// Runtime settings read from the environment (and .env, when loaded by main).
type Config struct {
	DBDriver    string
	DatabaseURL string
	SeedPath    string
	Port        string
	LogLevel    string
	LogFormat   string
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	return Config{
		DBDriver:    Get("DB_DRIVER", "sqlite"),
		DatabaseURL: Get("DATABASE_URL", "data/app.db"),
		SeedPath:    Get("SEED_PATH", "data/seeds/services.json"),
		Port:        Get("PORT", "8080"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		LogFormat:   Get("LOG_FORMAT", "text"),
	}
}
