package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "taskboard_", cfg.Storage.KeyPrefix)
	assert.Equal(t, "./data/taskboard.db", cfg.Storage.BoltPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, "postgres://taskboard:@localhost:5432/taskboard?sslmode=disable", cfg.Database.URL)
	assert.False(t, cfg.HTTP.EnableMetrics)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("STORAGE_KEY_PREFIX", "campus_assessment_")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "7")
	t.Setenv("MONITOR_INTERVAL_SECONDS", "1m")
	t.Setenv("SERVER_ENABLE_METRICS", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "campus_assessment_", cfg.Storage.KeyPrefix)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 7*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Monitor.Interval)
	assert.True(t, cfg.HTTP.EnableMetrics)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.Database.URL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("REDIS_DB", "three")
	t.Setenv("SERVER_ENABLE_PPROF", "maybe")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.False(t, cfg.HTTP.EnablePprof)
	assert.Equal(t, 15*time.Second, cfg.Context.ShutdownTimeout)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "localstorage")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "localstorage")
}
