// Package ratelimit implements the per-client rate limiter of spec.md
// §4.10: a Redis INCR+EXPIRE fixed-window counter, adapted from the
// pack's Redis middleware pattern to fail OPEN (rather than closed) when
// the backing store is unreachable, with an in-process
// golang.org/x/time/rate limiter as the local fallback.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Defaults from spec.md §4.10: 60 requests per 60-second window, burst 20.
const (
	DefaultLimit  = 60
	DefaultWindow = 60 * time.Second
	DefaultBurst  = 20

	opTimeout = 250 * time.Millisecond
)

// Decision is the outcome of a single Allow check, carrying everything the
// HTTP layer needs to set the X-RateLimit-* / Retry-After headers.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetSecs int
}

// Limiter is the Redis-backed windowed counter with a local fallback.
type Limiter struct {
	client   *redis.Client
	limit    int
	window   time.Duration
	burst    int
	fallback *localFallback
}

// New builds a Limiter. client may be nil, in which case every check uses
// the local fallback exclusively.
func New(client *redis.Client, limit int, window time.Duration, burst int) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if burst < 0 {
		burst = DefaultBurst
	}
	return &Limiter{
		client:   client,
		limit:    limit,
		window:   window,
		burst:    burst,
		fallback: newLocalFallback(limit, window, burst),
	}
}

// Allow checks whether clientKey (derived from X-Forwarded-For or the
// connection IP) may proceed. Redis failures fail OPEN: the request is
// allowed and the failure is not surfaced (spec.md §4.10).
func (l *Limiter) Allow(ctx context.Context, clientKey string) Decision {
	if l.client == nil {
		return l.fallback.Allow(clientKey)
	}

	windowSeconds := int(l.window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	allowedPerWindow := l.limit + l.burst

	bucket := time.Now().Unix() / int64(windowSeconds)
	key := fmt.Sprintf("ratelimit:%s:%d", clientKey, bucket)

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := l.client.Incr(opCtx, key).Result()
	if err != nil {
		// Fail open: the local limiter still counts the request, but its
		// verdict does not block it while Redis is unreachable.
		d := l.fallback.Allow(clientKey)
		d.Allowed = true
		return d
	}
	if count == 1 {
		_ = l.client.Expire(opCtx, key, time.Duration(windowSeconds+1)*time.Second).Err()
	}

	remaining := allowedPerWindow - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetSecs := windowSeconds - int(time.Now().Unix()%int64(windowSeconds))

	return Decision{
		Allowed:   int(count) <= allowedPerWindow,
		Limit:     allowedPerWindow,
		Remaining: remaining,
		ResetSecs: resetSecs,
	}
}

// localFallback is an in-process token-bucket limiter per client key, used
// when Redis is unreachable. It approximates the same limit/burst shape
// without a shared counter across replicas.
type localFallback struct {
	limit    int
	burst    int
	window   time.Duration
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLocalFallback(limit int, window time.Duration, burst int) *localFallback {
	return &localFallback{limit: limit, burst: burst, window: window, limiters: map[string]*rate.Limiter{}}
}

func (f *localFallback) Allow(clientKey string) Decision {
	f.mu.Lock()
	lim, ok := f.limiters[clientKey]
	if !ok {
		perSecond := rate.Limit(float64(f.limit) / f.window.Seconds())
		lim = rate.NewLimiter(perSecond, f.limit+f.burst)
		f.limiters[clientKey] = lim
	}
	f.mu.Unlock()
	allowed := lim.Allow()
	return Decision{
		Allowed:   allowed,
		Limit:     f.limit + f.burst,
		Remaining: int(lim.Tokens()),
		ResetSecs: int(f.window.Seconds()),
	}
}
