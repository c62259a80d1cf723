package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tb3/internal/config"
	"tb3/internal/ledger"
	"tb3/pkg/domain"
	"tb3/pkg/logger"
	"tb3/pkg/serrors"
	"tb3/pkg/storage"
)

const (
	maxTasksPerRegion = 500
	maxDaysSpan       = 90
)

// Options configure how seed jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when running a seed job before marking it failed.
	MaxAttempts int
	// UniquePeriod is the window during which an identical request reuses the
	// job already queued instead of adding another one.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Demo.MaxAttempts,
		UniquePeriod: cfg.Demo.UniquePeriod,
	}
}

// StatsReader is the part of the ledger the status report reads.
type StatsReader interface {
	Stats() ledger.Stats
}

// Validate checks the bounds of a seed request.
func Validate(req domain.DemoSeedRequest) error {
	if req.TasksPerRegion < 1 || req.TasksPerRegion > maxTasksPerRegion {
		return serrors.With(serrors.ErrBadRequest,
			"tasks_per_region must be between 1 and %d", maxTasksPerRegion)
	}
	if req.DaysSpan < 1 || req.DaysSpan > maxDaysSpan {
		return serrors.With(serrors.ErrBadRequest, "days_span must be between 1 and %d", maxDaysSpan)
	}

	return nil
}

// Tracker remembers the progress of seed runs. It is shared between the
// seeder, which updates it, and the service, which reports it.
type Tracker struct {
	mu         sync.Mutex
	running    bool
	seeded     bool
	seed       int64
	lastSeedAt *time.Time
	lastError  string
}

// NewTracker returns a tracker that has seen no runs.
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) begin(seed int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = true
	t.seed = seed
}

func (t *Tracker) finish(at time.Time, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	if err != nil {
		t.lastError = err.Error()

		return
	}
	t.seeded = true
	t.lastError = ""
	t.lastSeedAt = &at
}

func (t *Tracker) snapshot() domain.DemoStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := domain.DemoStatus{
		Running:   t.running,
		Seeded:    t.seeded,
		Seed:      t.seed,
		LastError: t.lastError,
	}
	if t.lastSeedAt != nil {
		at := *t.lastSeedAt
		st.LastSeedAt = &at
	}

	return st
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	jobs    storage.JobStorage
	ledger  StatsReader
	tracker *Tracker
}

// Enqueue queues a seed run. Queued is false when River skipped the insert
// because an identical run is still waiting or running.
func (s service) Enqueue(ctx context.Context, req domain.DemoSeedRequest) (*domain.DemoSeedResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	added, err := s.jobs.AddJob(ctx, newJobArgs(req, s.options), nil)
	if err != nil {
		return nil, fmt.Errorf("could not add seed job: %w", err)
	}

	logger.Info(ctx, "demo seed requested",
		zap.Int64("seed", req.Seed),
		zap.Int("tasksPerRegion", req.TasksPerRegion),
		zap.Int("daysSpan", req.DaysSpan),
		zap.Bool("badEdgeMode", req.BadEdgeMode),
		zap.Bool("queued", added))

	return &domain.DemoSeedResult{Queued: added, Request: req}, nil
}

// Status merges the tracker's view of seed runs with the ledger counters.
func (s service) Status(_ context.Context) (*domain.DemoStatus, error) {
	st := s.tracker.snapshot()

	stats := s.ledger.Stats()
	st.Edges = stats.Edges
	st.Tasks = stats.Tasks
	st.Logs = stats.Logs
	st.Proposals = stats.Proposals
	st.Height = stats.Height

	return &st, nil
}

// New returns a Service enqueueing seed jobs through jobs and reporting
// ledger counters from l.
func New(jobs storage.JobStorage, l StatsReader, tracker *Tracker, options Options) Service {
	return service{
		options: options,
		jobs:    jobs,
		ledger:  l,
		tracker: tracker,
	}
}
