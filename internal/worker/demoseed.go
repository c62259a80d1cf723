package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tb3/internal/demo"
	"tb3/pkg/logger"
	"tb3/pkg/serrors"
)

const (
	// seedTimeout bounds a single seed run.
	seedTimeout = 5 * time.Minute
	// busySnooze is how long a job waits when another seed run holds the ledger.
	busySnooze = 5 * time.Second
)

// DemoSeedWorker is a River worker that replaces the ledger and audit data
// with a generated demo dataset.
//
// A seed run resets shared state, so runs never overlap: a job picked up while
// another one is in progress is snoozed and retried later instead of
// interleaving with it. Invalid requests are canceled since retrying them
// cannot succeed.
type DemoSeedWorker struct {
	river.WorkerDefaults[demo.JobArgs]

	seeder demo.Seeder
	// running is held for the whole duration of a seed run.
	running sync.Mutex
}

// NewDemoSeedWorker constructs a DemoSeedWorker using the provided seeder.
func NewDemoSeedWorker(seeder demo.Seeder) *DemoSeedWorker {
	return &DemoSeedWorker{seeder: seeder}
}

// Timeout overrides River's default job timeout.
func (w *DemoSeedWorker) Timeout(*river.Job[demo.JobArgs]) time.Duration { return seedTimeout }

// Work runs one seed job.
func (w *DemoSeedWorker) Work(ctx context.Context, job *river.Job[demo.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("seed", job.Args.Seed))

	if !w.running.TryLock() {
		logger.Info(ctx, "another seed run is in progress, snoozing")

		return river.JobSnooze(busySnooze) //nolint: wrapcheck
	}
	defer w.running.Unlock()

	if err := w.seeder.Seed(ctx, job.Args.Request()); err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error seeding demo dataset", zap.Error(err))

		return fmt.Errorf("could not seed demo dataset: %w", err)
	}

	logger.Info(ctx, "demo dataset seeded successfully")

	return nil
}
