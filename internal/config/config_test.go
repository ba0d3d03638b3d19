package config

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("THREAD_CACHE_TTL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, "ro", cfg.DefaultLocale)
	assert.Equal(t, 5*time.Minute, cfg.ThreadCacheTTL)
	assert.Equal(t, time.Hour, cfg.ViewDedupeWindow)
	assert.Equal(t, "marketplace-images", cfg.MinIOBucket)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("THREAD_CACHE_TTL", "30s")
	t.Setenv("HOME_CACHE_TTL", "not-a-duration")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("DB_MAX_IDLE_CONNS", "-3")

	cfg := Load()

	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.ThreadCacheTTL)
	assert.Equal(t, time.Minute, cfg.HomeCacheTTL)
	assert.True(t, cfg.MinIOUseSSL)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns, "negative values are ignored")
}

func TestNewPostgresDB_RequiresURL(t *testing.T) {
	_, err := NewPostgresDB(&Config{StoreDriver: "postgres"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestApplyPool(t *testing.T) {
	db, err := sqlx.Open("postgres", "postgres://localhost/unused?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applyPool(db, &Config{DBMaxOpenConns: 4, DBMaxIdleConns: 9, DBConnMaxLifetime: time.Minute})

	assert.Equal(t, 4, db.Stats().MaxOpenConnections)
}
