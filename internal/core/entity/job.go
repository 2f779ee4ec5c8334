package entity

import "time"

// JobState is a node in the job state machine: pending -> running ->
// (success | failed | cancelled). Transitions are monotonic (spec.md §5).
type JobState string

const (
	JobPending   JobState = "pending"
	JobRunning   JobState = "running"
	JobSuccess   JobState = "success"
	JobFailed    JobState = "failed"
	JobCancelled JobState = "cancelled"
)

// Job is an async compilation unit, identified by UUID, with retention
// governed by the store's TTL (spec.md §6: "job:{uuid}", TTL 3600s after
// terminal state).
type Job struct {
	ID         string       `json:"id"`
	State      JobState     `json:"state"`
	Request    DocumentRequest `json:"request"`
	CreatedAt  time.Time    `json:"created_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
	ResultRef  string       `json:"result_ref,omitempty"`
	Filename   string       `json:"filename,omitempty"`
	Error      *RenderError `json:"error,omitempty"`
}

// Terminal reports whether the job has reached a state from which it will
// not transition further.
func (j *Job) Terminal() bool {
	switch j.State {
	case JobSuccess, JobFailed, JobCancelled:
		return true
	default:
		return false
	}
}

// MarkRunning transitions pending -> running.
func (j *Job) MarkRunning() {
	j.State = JobRunning
}

// MarkSuccess transitions running -> success and sets the result reference,
// satisfying invariant 5 (a successful job has a non-null result_ref and no error).
func (j *Job) MarkSuccess(resultRef, filename string) {
	now := time.Now().UTC()
	j.State = JobSuccess
	j.ResultRef = resultRef
	j.Filename = filename
	j.FinishedAt = &now
	j.Error = nil
}

// MarkFailed transitions running -> failed and records the error.
func (j *Job) MarkFailed(err *RenderError) {
	now := time.Now().UTC()
	j.State = JobFailed
	j.Error = err
	j.FinishedAt = &now
	j.ResultRef = ""
}

// MarkCancelled transitions pending -> cancelled (best-effort; a job already
// running completes or is abandoned, per spec.md §9).
func (j *Job) MarkCancelled() {
	now := time.Now().UTC()
	j.State = JobCancelled
	j.FinishedAt = &now
}
