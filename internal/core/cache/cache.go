package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/redis/go-redis/v9"
)

// Default TTLs per spec.md §4.7.
const (
	DefaultPDFTTL   = 24 * time.Hour
	DefaultTypstTTL = 12 * time.Hour

	// opTimeout bounds every L2 round trip so a slow or unreachable Redis
	// never blocks the render critical path.
	opTimeout = 250 * time.Millisecond

	// l1RefreshTTL is used when repopulating L1 from an L2 hit, since the
	// remaining L2 TTL is not reported by a plain GET.
	l1RefreshTTL = 10 * time.Minute
)

// Metrics is the object returned by Cache.Metrics(), spec.md §4.7.
type Metrics struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Total   int64   `json:"total"`
	HitRate float64 `json:"hit_rate"`
	Errors  int64   `json:"errors"`
}

// Cache is the two-tier document cache: an in-process ristretto L1 in front
// of a Redis L2, the source of truth. When Redis is unreachable the cache
// degrades to a disabled mode: gets always miss, sets are no-ops, and
// failures are counted but never propagated to the caller (spec.md §4.7).
type Cache struct {
	l1       *ristretto.Cache[string, []byte]
	l2       *redis.Client
	disabled atomic.Bool

	pdfTTL   time.Duration
	typstTTL time.Duration

	hits, misses, errs atomic.Int64
}

// New builds a Cache. l2 may be nil, in which case the cache starts
// disabled (L1-only is deliberately not offered: L2 is the documented
// source of truth, so its absence degrades to disabled rather than silently
// serving stale L1 data across process restarts).
func New(l2 *redis.Client) (*Cache, error) {
	l1, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 100_000,
		MaxCost:     1 << 27, // 128 MiB of L1 budget
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	c := &Cache{l1: l1, l2: l2, pdfTTL: DefaultPDFTTL, typstTTL: DefaultTypstTTL}
	if l2 == nil {
		c.disabled.Store(true)
	}
	return c, nil
}

// NewWithTTLs builds a Cache like New, but overrides the default PDF/Typst
// TTLs (spec.md §6: PDF_CACHE_TTL, TYPST_CACHE_TTL env vars) instead of the
// package DefaultPDFTTL/DefaultTypstTTL constants. A zero duration keeps the
// corresponding default.
func NewWithTTLs(l2 *redis.Client, pdfTTL, typstTTL time.Duration) (*Cache, error) {
	c, err := New(l2)
	if err != nil {
		return nil, err
	}
	if pdfTTL > 0 {
		c.pdfTTL = pdfTTL
	}
	if typstTTL > 0 {
		c.typstTTL = typstTTL
	}
	return c, nil
}

// GetPDF fetches a cached PDF by key.
func (c *Cache) GetPDF(ctx context.Context, key string) ([]byte, bool) {
	return c.get(ctx, key)
}

// SetPDF stores a PDF with the default (or supplied) TTL.
func (c *Cache) SetPDF(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.pdfTTL
	}
	c.set(ctx, key, data, ttl)
}

// GetTypst fetches cached Typst source by key.
func (c *Cache) GetTypst(ctx context.Context, key string) (string, bool) {
	data, ok := c.get(ctx, key)
	if !ok {
		return "", false
	}
	return string(data), true
}

// SetTypst stores Typst source with the default (or supplied) TTL.
func (c *Cache) SetTypst(ctx context.Context, key string, source string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.typstTTL
	}
	c.set(ctx, key, []byte(source), ttl)
}

// Invalidate removes key from both tiers.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c.disabled.Load() {
		return
	}
	c.l1.Del(key)
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := c.l2.Del(opCtx, key).Err(); err != nil {
		c.errs.Add(1)
	}
}

// Connected reports whether the cache was built with an L2 client (and so is
// not disabled), for the /health endpoint's cache_connected flag (spec.md
// §4.11). It does not probe Redis.
func (c *Cache) Connected() bool {
	return !c.disabled.Load()
}

// Metrics reports cumulative hit/miss/error counters.
func (c *Cache) Metrics() Metrics {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses
	var rate float64
	if total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Metrics{Hits: hits, Misses: misses, Total: total, HitRate: rate, Errors: c.errs.Load()}
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, bool) {
	if c.disabled.Load() {
		c.misses.Add(1)
		return nil, false
	}

	if data, found := c.l1.Get(key); found {
		c.hits.Add(1)
		return data, true
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	data, err := c.l2.Get(opCtx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.errs.Add(1)
		}
		c.misses.Add(1)
		return nil, false
	}

	c.l1.SetWithTTL(key, data, int64(len(data)), l1RefreshTTL)
	c.hits.Add(1)
	return data, true
}

func (c *Cache) set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if c.disabled.Load() {
		return
	}
	c.l1.SetWithTTL(key, data, int64(len(data)), ttl)

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := c.l2.Set(opCtx, key, data, ttl).Err(); err != nil {
		c.errs.Add(1)
	}
}

// Close releases cache resources.
func (c *Cache) Close() {
	c.l1.Close()
}
