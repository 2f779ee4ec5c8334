// Command api runs the resumegen HTTP server: validation, Typst/DOCX
// rendering, two-tier caching, async jobs and rate limiting over a single
// gin engine (spec.md §4.10).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	httpserver "github.com/rendis/resumegen/internal/adapters/primary/http"
	"github.com/rendis/resumegen/internal/adapters/primary/http/controller"
	"github.com/rendis/resumegen/internal/core/cache"
	"github.com/rendis/resumegen/internal/core/jobqueue"
	"github.com/rendis/resumegen/internal/core/orchestrator"
	"github.com/rendis/resumegen/internal/core/ratelimit"
	"github.com/rendis/resumegen/internal/core/registry"
	"github.com/rendis/resumegen/internal/core/typst"
	"github.com/rendis/resumegen/internal/infra/config"
	"github.com/rendis/resumegen/internal/infra/logging"
	"github.com/rendis/resumegen/internal/infra/redisconn"
	"github.com/rendis/resumegen/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logging.Setup(cfg.Logging.Format, cfg.Logging.Level)
	log.InfoContext(ctx, "starting resumegen", slog.String("environment", cfg.Environment))

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	redisClient := redisconn.Connect(ctx, cfg.Redis, cfg.Cache.Enabled, log)

	c, err := cache.NewWithTTLs(redisClient, cfg.Cache.PDFCacheTTLDuration(), cfg.Cache.TypstCacheTTLDuration())
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer c.Close()

	compiler, compilerErr := typst.Get(typst.Options{
		BinPath:       cfg.Typst.BinPath,
		Timeout:       cfg.Typst.TimeoutDuration(),
		FontDirs:      cfg.Typst.FontDirs,
		MaxConcurrent: cfg.Typst.MaxConcurrent,
	})
	compilerReady := compilerErr == nil
	if compilerErr != nil {
		log.WarnContext(ctx, "typst compiler unavailable at startup, render requests will fail", slog.String("error", compilerErr.Error()))
	}

	reg := registry.New()
	orch := orchestrator.New(reg, compiler, c, log)

	jobStore := jobqueue.NewStore(redisClient)
	queue := jobqueue.New(jobStore, c, orch, cfg.Workers.JobWorkers, 0, log)
	go func() {
		if err := queue.Run(ctx); err != nil {
			log.ErrorContext(ctx, "job queue stopped", slog.String("error", err.Error()))
		}
	}()

	limiter := ratelimit.New(redisClient, cfg.RateLimit.PerMinute, ratelimit.DefaultWindow, cfg.RateLimit.Burst)

	srv := httpserver.NewServer(cfg, limiter, httpserver.Controllers{
		Render:   controller.NewRenderController(orch, reg, queue),
		Template: controller.NewTemplateController(reg),
		Job:      controller.NewJobController(queue),
		System:   controller.NewSystemController(c, compilerReady),
	})

	return srv.Run(ctx)
}
