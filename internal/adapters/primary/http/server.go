// Package http assembles the gin engine and the net/http server around it,
// adapted from the teacher's internal/infra/server/http.go.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendis/resumegen/internal/adapters/primary/http/controller"
	"github.com/rendis/resumegen/internal/adapters/primary/http/middleware"
	"github.com/rendis/resumegen/internal/core/ratelimit"
	"github.com/rendis/resumegen/internal/infra/config"
)

// Server wraps the gin engine and the net/http.Server listening on top of
// it.
type Server struct {
	engine *gin.Engine
	cfg    *config.ServerConfig
}

// Controllers groups every controller the router mounts, so NewServer's
// signature stays stable as the HTTP surface grows.
type Controllers struct {
	Render   *controller.RenderController
	Template *controller.TemplateController
	Job      *controller.JobController
	System   *controller.SystemController
}

// NewServer builds the gin engine with the full middleware chain of
// spec.md §4.10 and mounts every controller.
func NewServer(cfg *config.Config, limiter *ratelimit.Limiter, c Controllers) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeoutDuration()))
	engine.Use(middleware.RateLimit(limiter))

	c.System.RegisterRoutes(engine)

	api := engine.Group("/api/v1")
	{
		c.Render.RegisterRoutes(api)
		c.Template.RegisterRoutes(api)
		c.Job.RegisterRoutes(api)
	}

	return &Server{engine: engine, cfg: &cfg.Server}
}

// Engine returns the underlying gin engine, for tests that drive the HTTP
// surface with httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests within the server's shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", s.cfg.Port),
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeoutDuration(),
		WriteTimeout: s.cfg.WriteTimeoutDuration(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeoutDuration())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}
