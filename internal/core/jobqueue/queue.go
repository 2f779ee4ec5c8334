// Package jobqueue implements the async job facility of spec.md §4.9: a
// fixed-size worker pool draining a bounded channel of submitted requests,
// persisting state transitions to a Redis-backed job store.
package jobqueue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rendis/resumegen/internal/core/cache"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/orchestrator"
)

// DefaultWorkers is the default fixed pool size (spec.md §4.9).
const DefaultWorkers = 32

// DefaultQueueDepth bounds the in-memory submission channel; once full,
// Submit rejects rather than silently dropping (spec.md §5).
const DefaultQueueDepth = 256

// ErrQueueFull is returned by Submit when the bounded channel has no room.
var ErrQueueFull = errors.New("jobqueue: queue is full")

// Renderer is the subset of the orchestrator a worker needs.
type Renderer interface {
	Render(ctx context.Context, req entity.DocumentRequest) (*orchestrator.Result, *entity.RenderError)
}

// Queue is the worker pool plus job store.
type Queue struct {
	store   *Store
	cache   *cache.Cache
	render  Renderer
	jobs    chan *entity.Job
	log     *slog.Logger
	workers int
}

// New builds a Queue with the given worker count (DefaultWorkers if <= 0)
// and queue depth (DefaultQueueDepth if <= 0).
func New(store *Store, c *cache.Cache, render Renderer, workers, depth int, log *slog.Logger) *Queue {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if depth <= 0 {
		depth = DefaultQueueDepth
	}
	if log == nil {
		log = slog.Default()
	}
	return &Queue{
		store:   store,
		cache:   c,
		render:  render,
		jobs:    make(chan *entity.Job, depth),
		log:     log,
		workers: workers,
	}
}

// Run starts the worker pool and blocks until ctx is cancelled, draining
// in-flight workers before returning.
func (q *Queue) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < q.workers; i++ {
		g.Go(func() error {
			return q.worker(ctx)
		})
	}
	return g.Wait()
}

func (q *Queue) worker(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case job, ok := <-q.jobs:
			if !ok {
				return nil
			}
			q.process(ctx, job)
		}
	}
}

// Submit enqueues req as a new job and returns its id immediately
// (spec.md §4.9: 202 with {job_id, state: pending}). It returns
// ErrQueueFull if the bounded channel has no room, so submissions never
// drop silently.
func (q *Queue) Submit(ctx context.Context, req entity.DocumentRequest) (*entity.Job, error) {
	job := &entity.Job{
		ID:        uuid.NewString(),
		State:     entity.JobPending,
		Request:   req,
		CreatedAt: time.Now().UTC(),
	}
	if err := q.store.Save(ctx, job); err != nil {
		return nil, err
	}

	select {
	case q.jobs <- job:
		return job, nil
	default:
		return nil, ErrQueueFull
	}
}

// Status returns a job's current record.
func (q *Queue) Status(ctx context.Context, id string) (*entity.Job, bool) {
	return q.store.Get(ctx, id)
}

// Cancel best-effort transitions a pending job to cancelled. Running jobs
// are unaffected: they complete or are abandoned (spec.md §4.9/§9).
func (q *Queue) Cancel(ctx context.Context, id string) bool {
	job, ok := q.store.Get(ctx, id)
	if !ok || job.State != entity.JobPending {
		return false
	}
	job.MarkCancelled()
	_ = q.store.Save(ctx, job)
	return true
}

func (q *Queue) process(ctx context.Context, job *entity.Job) {
	current, ok := q.store.Get(ctx, job.ID)
	if ok && current.State == entity.JobCancelled {
		return
	}

	job.MarkRunning()
	if err := q.store.Save(ctx, job); err != nil {
		q.log.Error("job store save failed", "job_id", job.ID, "err", err)
	}

	result, renderErr := q.render.Render(ctx, job.Request)
	if renderErr != nil {
		job.MarkFailed(renderErr)
		if err := q.store.Save(ctx, job); err != nil {
			q.log.Error("job store save failed", "job_id", job.ID, "err", err)
		}
		return
	}

	job.MarkSuccess(job.ID, result.Artifact.Filename)
	q.cache.SetPDF(ctx, resultCacheKey(job.ID), result.Artifact.Bytes, Retention)
	if err := q.store.Save(ctx, job); err != nil {
		q.log.Error("job store save failed", "job_id", job.ID, "err", err)
	}
}

// resultCacheKey stores a completed job's bytes under a job-scoped cache
// key distinct from the content-addressed pdf: keys, so /jobs/{id}/download
// can fetch by job id regardless of whether the request would itself have
// cache-hit.
func resultCacheKey(jobID string) string { return "job-result:" + jobID }

// Download fetches a completed job's bytes, or false if not yet available
// or already reaped.
func (q *Queue) Download(ctx context.Context, jobID string) ([]byte, bool) {
	return q.cache.GetPDF(ctx, resultCacheKey(jobID))
}
