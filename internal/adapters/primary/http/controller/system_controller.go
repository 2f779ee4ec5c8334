package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rendis/resumegen/internal/adapters/primary/http/dto"
	"github.com/rendis/resumegen/internal/core/cache"
)

// ServiceVersion is stamped into the banner and is overridable at link time
// via -ldflags "-X .../controller.ServiceVersion=...".
var ServiceVersion = "dev"

// SystemController exposes the service banner, liveness, and metrics
// endpoints of spec.md §4.11.
type SystemController struct {
	cache         *cache.Cache
	compilerReady bool
}

// NewSystemController builds a SystemController. compilerReady reflects
// whether the Typst binary was found at startup (spec.md §4.5).
func NewSystemController(c *cache.Cache, compilerReady bool) *SystemController {
	return &SystemController{cache: c, compilerReady: compilerReady}
}

// RegisterRoutes registers the system-family routes directly on the engine,
// outside any versioned group, matching the teacher's convention of
// unprefixed operational endpoints.
func (c *SystemController) RegisterRoutes(rg gin.IRouter) {
	rg.GET("/", c.Banner)
	rg.GET("/health", c.Health)
	rg.GET("/metrics", c.Metrics)
	rg.GET("/metrics/prometheus", gin.WrapH(promhttp.Handler()))
}

// Banner returns the service name and version.
func (c *SystemController) Banner(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.BannerResponse{Service: "resumegen", Version: ServiceVersion})
}

// Health reports liveness plus the two dependency flags spec.md §4.11
// requires: whether the Typst compiler was found, and whether the Redis
// cache tier is connected (a degraded cache is not fatal, so Health still
// returns 200 when cache_connected is false).
func (c *SystemController) Health(ctx *gin.Context) {
	connected := false
	if c.cache != nil {
		connected = c.cache.Connected()
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "ok",
		CompilerReady:  c.compilerReady,
		CacheConnected: connected,
	})
}

// Metrics returns the cache hit/miss counters as JSON, a lighter-weight
// companion to the /metrics/prometheus exposition endpoint.
func (c *SystemController) Metrics(ctx *gin.Context) {
	m := dto.MetricsResponse{}
	if c.cache != nil {
		cm := c.cache.Metrics()
		m.Hits = cm.Hits
		m.Misses = cm.Misses
		m.Total = cm.Total
		m.HitRate = cm.HitRate
		m.Errors = cm.Errors
		m.Cache.Connected = c.cache.Connected()
	}
	ctx.JSON(http.StatusOK, m)
}
