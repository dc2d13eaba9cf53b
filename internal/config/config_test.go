package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DATABASE_URL", "SEED_PATH", "PORT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "data/app.db", cfg.DatabaseURL)
	assert.Equal(t, "data/seeds/services.json", cfg.SeedPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://localhost/bookings")
	t.Setenv("PORT", "  9090 ")

	cfg := Load()
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/bookings", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
}
