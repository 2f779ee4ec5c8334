package jobqueue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/cache"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/orchestrator"
)

type fakeRenderer struct {
	result *orchestrator.Result
	err    *entity.RenderError
}

func (f *fakeRenderer) Render(ctx context.Context, req entity.DocumentRequest) (*orchestrator.Result, *entity.RenderError) {
	return f.result, f.err
}

func newTestQueue(t *testing.T, render Renderer) *Queue {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client)
	c, err := cache.New(client)
	require.NoError(t, err)
	return New(store, c, render, 2, 16, nil)
}

func sampleJobRequest() entity.DocumentRequest {
	return entity.DocumentRequest{
		DocumentType: entity.DocumentTypeResume,
		Template:     "classic",
		Format:       entity.FormatPDF,
		Data:         entity.Data{"personalInfo": map[string]any{"name": "Ada", "email": "a@b.com"}},
	}
}

func TestSubmit_AssignsIDAndPending(t *testing.T) {
	q := newTestQueue(t, &fakeRenderer{result: &orchestrator.Result{Artifact: &entity.RenderArtifact{Bytes: []byte("x"), Filename: "f.pdf"}}})
	job, err := q.Submit(context.Background(), sampleJobRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, entity.JobPending, job.State)
}

func TestQueue_ProcessesJobToSuccess(t *testing.T) {
	render := &fakeRenderer{result: &orchestrator.Result{Artifact: &entity.RenderArtifact{Bytes: []byte("%PDF"), Filename: "ada.pdf"}}}
	q := newTestQueue(t, render)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go q.Run(ctx)

	job, err := q.Submit(ctx, sampleJobRequest())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		status, ok := q.Status(ctx, job.ID)
		return ok && status.Terminal()
	}, time.Second, 10*time.Millisecond)

	status, ok := q.Status(ctx, job.ID)
	require.True(t, ok)
	assert.Equal(t, entity.JobSuccess, status.State)
	assert.Equal(t, "ada.pdf", status.Filename)

	data, ok := q.Download(ctx, job.ID)
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestQueue_ProcessesJobToFailed(t *testing.T) {
	render := &fakeRenderer{err: entity.NewError(entity.CodeCompilationFailed, "boom", "boom", nil)}
	q := newTestQueue(t, render)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go q.Run(ctx)

	job, err := q.Submit(ctx, sampleJobRequest())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		status, ok := q.Status(ctx, job.ID)
		return ok && status.Terminal()
	}, time.Second, 10*time.Millisecond)

	status, _ := q.Status(ctx, job.ID)
	assert.Equal(t, entity.JobFailed, status.State)
	assert.NotNil(t, status.Error)
	assert.Empty(t, status.ResultRef)
}

func TestSubmit_QueueFullRejects(t *testing.T) {
	q := newTestQueue(t, &fakeRenderer{})
	q.workers = 0 // no workers draining; channel will fill
	q.jobs = make(chan *entity.Job, 1)

	_, err := q.Submit(context.Background(), sampleJobRequest())
	require.NoError(t, err)
	_, err = q.Submit(context.Background(), sampleJobRequest())
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestCancel_PendingJobBecomesCancelled(t *testing.T) {
	q := newTestQueue(t, &fakeRenderer{})
	q.workers = 0
	q.jobs = make(chan *entity.Job, 4)

	job, err := q.Submit(context.Background(), sampleJobRequest())
	require.NoError(t, err)

	assert.True(t, q.Cancel(context.Background(), job.ID))
	status, _ := q.Status(context.Background(), job.ID)
	assert.Equal(t, entity.JobCancelled, status.State)
}
