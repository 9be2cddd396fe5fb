package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 24, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "material-map", cfg.Storage.Bucket)
	assert.Equal(t, 3, cfg.Seed.MaxRetries)
}

func TestLoad_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/mm")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("RATE_LIMIT_GENERAL_RPS", "2.5")
	t.Setenv("STORAGE_FORCE_PATH_STYLE", "FALSE")
	t.Setenv("JWT_ACCESS_TTL", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.RateLimit.GeneralPerSecond)
	assert.False(t, cfg.Storage.ForcePathStyle)
	assert.Equal(t, 24, cfg.JWT.AccessTokenTTL)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{URL: "postgresql://u:p@db:5432/mm"}
	assert.Equal(t, "postgresql://u:p@db:5432/mm?sslmode=require", d.DSN())

	d = DatabaseConfig{URL: "postgresql://u:p@db:5432/mm?connect_timeout=5"}
	assert.Equal(t, "postgresql://u:p@db:5432/mm?connect_timeout=5&sslmode=require", d.DSN())

	d = DatabaseConfig{URL: "postgresql://u:p@db:5432/mm?sslmode=disable"}
	assert.Equal(t, "postgresql://u:p@db:5432/mm?sslmode=disable", d.DSN())

	d = DatabaseConfig{Host: "localhost", Port: "5432", User: "postgres", Password: "pw", Database: "mm", SSLMode: "disable"}
	assert.Contains(t, d.DSN(), "host=localhost port=5432 user=postgres password=pw dbname=mm sslmode=disable")
}
