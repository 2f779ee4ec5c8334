package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := New(client, 5, time.Minute, 0)

	for i := 0; i < 5; i++ {
		d := l.Allow(context.Background(), "1.2.3.4")
		assert.True(t, d.Allowed, "request %d should be allowed", i)
	}
}

func TestLimiter_RejectsOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := New(client, 2, time.Minute, 0)

	l.Allow(context.Background(), "1.2.3.4")
	l.Allow(context.Background(), "1.2.3.4")
	d := l.Allow(context.Background(), "1.2.3.4")
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}

func TestLimiter_BurstExtendsAllowance(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := New(client, 2, time.Minute, 3)

	for i := 0; i < 5; i++ {
		d := l.Allow(context.Background(), "1.2.3.4")
		assert.True(t, d.Allowed, "request %d should be within limit+burst", i)
	}
	d := l.Allow(context.Background(), "1.2.3.4")
	assert.False(t, d.Allowed)
}

func TestLimiter_FailsOpenWhenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := New(client, 1, time.Minute, 0)
	mr.Close()

	d := l.Allow(context.Background(), "1.2.3.4")
	assert.True(t, d.Allowed, "redis outage must fail open")
}

func TestLimiter_NilClientUsesLocalFallback(t *testing.T) {
	l := New(nil, 2, time.Second, 0)
	allowedCount := 0
	for i := 0; i < 5; i++ {
		if l.Allow(context.Background(), "1.2.3.4").Allowed {
			allowedCount++
		}
	}
	require.LessOrEqual(t, allowedCount, 5)
	assert.Greater(t, allowedCount, 0)
}

func TestLimiter_DifferentKeysIndependent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := New(client, 1, time.Minute, 0)

	d1 := l.Allow(context.Background(), "1.1.1.1")
	d2 := l.Allow(context.Background(), "2.2.2.2")
	assert.True(t, d1.Allowed)
	assert.True(t, d2.Allowed)
}
