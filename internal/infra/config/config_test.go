package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoEnv(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 120, cfg.Server.RequestTimeoutSeconds)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 86400, cfg.Cache.PDFCacheTTL)
	assert.Equal(t, 43200, cfg.Cache.TypstCacheTTL)
	assert.Equal(t, 60, cfg.RateLimit.PerMinute)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, 4, cfg.Workers.MaxWorkers)
	assert.Equal(t, 32, cfg.Workers.JobWorkers)
	assert.Equal(t, "typst", cfg.Typst.BinPath)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("RESUMEGEN_REDIS_HOST", "cache.internal")
	t.Setenv("RESUMEGEN_RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("RESUMEGEN_CACHE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, 120, cfg.RateLimit.PerMinute)
	assert.False(t, cfg.Cache.Enabled)
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", r.Addr())
}

func TestServerConfig_DurationHelpers(t *testing.T) {
	s := ServerConfig{ReadTimeout: 30, RequestTimeoutSeconds: 120}
	assert.Equal(t, 30_000_000_000, int(s.ReadTimeoutDuration()))
	assert.Equal(t, 120_000_000_000, int(s.RequestTimeoutDuration()))
}
