package demo

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"tb3/pkg/domain"
)

// JobArgs contains the arguments of a demo seed job submitted to River. Every
// field takes part in the unique key so that repeating a request while it is
// still queued does not schedule a second run.
type JobArgs struct {
	Seed           int64 `json:"seed" river:"unique"`
	TasksPerRegion int   `json:"tasks_per_region" river:"unique"`
	DaysSpan       int   `json:"days_span" river:"unique"`
	BadEdgeMode    bool  `json:"bad_edge_mode" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate.
	uniqueJobPeriod time.Duration
}

func newJobArgs(req domain.DemoSeedRequest, opts Options) JobArgs {
	return JobArgs{
		Seed:            req.Seed,
		TasksPerRegion:  req.TasksPerRegion,
		DaysSpan:        req.DaysSpan,
		BadEdgeMode:     req.BadEdgeMode,
		maxAttempts:     opts.MaxAttempts,
		uniqueJobPeriod: opts.UniquePeriod,
	}
}

// Kind returns the River job kind used to register and dispatch the seed worker.
func (args JobArgs) Kind() string { return "DemoSeedJob" }

// Request converts the job back into the seed request it was built from.
func (args JobArgs) Request() domain.DemoSeedRequest {
	return domain.DemoSeedRequest{
		Seed:           args.Seed,
		TasksPerRegion: args.TasksPerRegion,
		DaysSpan:       args.DaysSpan,
		BadEdgeMode:    args.BadEdgeMode,
	}
}

// InsertOpts returns the River options that control how the job is enqueued.
// Finished runs are left out of the unique states so that a completed seed can
// be replayed right away.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
