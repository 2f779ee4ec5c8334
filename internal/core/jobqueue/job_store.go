package jobqueue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rendis/resumegen/internal/core/entity"
)

// ErrStoreDisabled is returned by Save when no Redis client is configured,
// matching the cache's degrade-to-disabled behavior rather than panicking
// on a nil client.
var ErrStoreDisabled = errors.New("jobqueue: store disabled, no redis client")

// jobKeyPrefix namespaces job records in the shared KV backend (spec.md
// §4.9: "same KV backend as the cache, under a job: prefix").
const jobKeyPrefix = "job:"

// Retention is how long a terminal job record survives before reaping
// (spec.md §4.9).
const Retention = time.Hour

// Store persists job records in Redis with the job: prefix and retention
// TTL. It is the job-queue analogue of the document cache's L2 tier.
type Store struct {
	client *redis.Client
}

// NewStore builds a job Store over client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func jobKey(id string) string { return jobKeyPrefix + id }

// Save upserts a job record with the retention TTL.
func (s *Store) Save(ctx context.Context, job *entity.Job) error {
	if s.client == nil {
		return ErrStoreDisabled
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, jobKey(job.ID), raw, Retention).Err()
}

// Get fetches a job record, returning (nil, false) if absent, expired, or
// the store is disabled.
func (s *Store) Get(ctx context.Context, id string) (*entity.Job, bool) {
	if s.client == nil {
		return nil, false
	}
	raw, err := s.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var job entity.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, false
	}
	return &job, true
}

// Delete removes a job record. Records otherwise expire through the
// retention TTL set by Save.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return ErrStoreDisabled
	}
	return s.client.Del(ctx, jobKey(id)).Err()
}
