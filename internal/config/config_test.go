package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "Asia/Tashkent", cfg.Server.Timezone)
	assert.Equal(t, 5*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, 1.0, cfg.Geocoder.RatePerSecond)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "Asia/Tashkent", cfg.Location().String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("STORAGE_BACKEND", "MEMORY")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("NOMINATIM_URL", "http://localhost:9999/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/loja")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "http://localhost:9999", cfg.Geocoder.BaseURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "postgres://u:p@db:5432/loja", cfg.Postgres.ConnectionString())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("sem segredo JWT", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("backend desconhecido", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "segredo")
		t.Setenv("STORAGE_BACKEND", "sqlite")
		_, err := Load()
		assert.ErrorContains(t, err, "STORAGE_BACKEND")
	})

	t.Run("fuso horário inválido", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "segredo")
		t.Setenv("STORAGE_BACKEND", "memory")
		t.Setenv("APP_TIMEZONE", "Marte/Olympus")
		_, err := Load()
		assert.ErrorContains(t, err, "APP_TIMEZONE")
	})
}

func TestConnectionStringFromParts(t *testing.T) {
	pg := PostgresConfig{User: "u", Password: "p", Host: "h", Port: 5433, Database: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=disable", pg.ConnectionString())
}
