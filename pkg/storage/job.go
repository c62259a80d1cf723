package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend, atomically
// with any surrounding transaction when the backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the insert was skipped because an identical unique job already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
