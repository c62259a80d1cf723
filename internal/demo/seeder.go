package demo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"tb3/internal/ledger"
	"tb3/pkg/domain"
	"tb3/pkg/hashing"
	"tb3/pkg/logger"
	"tb3/pkg/storage"
)

const (
	regionA = "A"
	regionB = "B"

	// pcgStream is the second PCG word; the first one is the request seed.
	pcgStream = 0x7462330000000001

	// Fractions of stored detail rows altered in bad edge mode.
	tamperRate = 0.08
	dropRate   = 0.06
	orphanRate = 0.10
)

var profiles = []string{"default", "latency", "throughput", "secure"}

// seeder is the concrete implementation of the Seeder interface.
type seeder struct {
	ledger  *ledger.Ledger
	storage storage.Storage
	actors  Actors
	tracker *Tracker
	now     func() time.Time
}

// NewSeeder returns a Seeder writing to l and store. Each task's database rows
// are written in one transaction. A nil now defaults to time.Now.
func NewSeeder(l *ledger.Ledger, store storage.Storage, actors Actors, tracker *Tracker,
	now func() time.Time) Seeder {
	if now == nil {
		now = time.Now
	}

	return &seeder{
		ledger:  l,
		storage: store,
		actors:  actors,
		tracker: tracker,
		now:     now,
	}
}

// Seed resets the ledger and the audit tables, then replays req.TasksPerRegion
// tasks in each region. The same request always produces the same ledger
// content relative to the seeding time.
func (s *seeder) Seed(ctx context.Context, req domain.DemoSeedRequest) error {
	if err := Validate(req); err != nil {
		return err
	}

	s.tracker.begin(req.Seed)
	err := s.seed(ctx, req)
	s.tracker.finish(s.now().UTC(), err)

	return err
}

func (s *seeder) seed(ctx context.Context, req domain.DemoSeedRequest) error {
	ctx = logger.WithFields(ctx, zap.Int64("seed", req.Seed))

	s.ledger.Reset(ctx)
	if err := s.storage.PurgeAuditData(ctx); err != nil {
		return fmt.Errorf("could not purge audit data: %w", err)
	}

	for _, e := range []struct{ addr, region string }{
		{s.actors.Edge1, regionA},
		{s.actors.Edge2, regionA},
		{s.actors.Edge3, regionB},
	} {
		if _, err := s.ledger.RegisterEdge(ctx, e.addr, e.addr, e.region); err != nil {
			return fmt.Errorf("could not register edge %s: %w", e.addr, err)
		}
	}

	run := &seedRun{
		seeder: s,
		req:    req,
		rnd:    rand.New(rand.NewPCG(uint64(req.Seed), pcgStream)), //nolint: gosec
		start:  s.now().Unix(),
	}
	for _, region := range []string{regionA, regionB} {
		for i := 1; i <= req.TasksPerRegion; i++ {
			if err := run.task(ctx, region, i); err != nil {
				return err
			}
		}
	}

	if err := run.consensusRound(ctx); err != nil {
		return err
	}
	if err := run.reportStalled(ctx); err != nil {
		return err
	}

	if req.BadEdgeMode {
		if _, err := s.ledger.PropagateReputation(ctx, s.actors.Cloud, s.actors.Edge2, regionA, regionB,
			"demo: share edge2 reputation with region B"); err != nil {
			return fmt.Errorf("could not propagate reputation: %w", err)
		}
	}

	stats := s.ledger.Stats()
	logger.Info(ctx, "demo dataset seeded",
		zap.Int("edges", stats.Edges),
		zap.Int("tasks", stats.Tasks),
		zap.Int("logs", stats.Logs),
		zap.Int("proposals", stats.Proposals),
		zap.Int64("height", stats.Height))

	return nil
}

// seedRun carries the generator state of one Seed call.
type seedRun struct {
	*seeder
	req domain.DemoSeedRequest
	rnd *rand.Rand
	// start is the unix time task creation times are spread back from.
	start int64
	// stalled holds the tasks edge2 left unfinished in bad edge mode.
	stalled []domain.Task
}

func (r *seedRun) between(lo, hi int) int64 {
	return int64(lo + r.rnd.IntN(hi-lo+1))
}

// stagesFor picks how far a task got: only received, executed, or finished.
func (r *seedRun) stagesFor() []domain.Stage {
	switch p := r.rnd.Float64(); {
	case p < 0.15:
		return []domain.Stage{domain.StageRecv}
	case p < 0.35:
		return []domain.Stage{domain.StageRecv, domain.StageExec}
	default:
		return []domain.Stage{domain.StageRecv, domain.StageExec, domain.StageResult}
	}
}

func (r *seedRun) task(ctx context.Context, region string, i int) error {
	taskID := fmt.Sprintf("demo-%s-%04d", region, i)

	nt := ledger.NewTask{
		TaskID:    taskID,
		Region:    region,
		Profile:   profiles[r.rnd.IntN(len(profiles))],
		CreatedTs: r.start - r.between(3600, r.req.DaysSpan*86400),
	}
	// every fifth task of region A lands on edge2 so its reputation has
	// something to react to
	if r.req.BadEdgeMode && region == regionA && i%5 == 0 {
		nt.EdgeAddr = r.actors.Edge2
	}

	payloadHash, err := hashing.HashJSON(map[string]any{
		"task_id": taskID,
		"region":  region,
		"n":       r.between(1, 10),
		"p":       r.rnd.Float64(),
	})
	if err != nil {
		return fmt.Errorf("could not hash payload: %w", err)
	}
	nt.PayloadHash = payloadHash

	task, _, err := r.ledger.CreateTask(ctx, r.actors.Vehicle, nt)
	if err != nil {
		return fmt.Errorf("could not create task %s: %w", taskID, err)
	}
	edge := task.ChosenEdgeAddr
	bad := r.req.BadEdgeMode && edge == r.actors.Edge2

	stages := r.stagesFor()
	finished := len(stages) == 3
	accepted := finished && !bad && r.rnd.Float64() >= 0.1

	var resultJSON, resultHash string
	if finished {
		result := map[string]any{"task_id": taskID, "ok": accepted, "value": r.rnd.Float64()}
		raw, err := hashing.Canonical(result)
		if err != nil {
			return fmt.Errorf("could not encode result: %w", err)
		}
		resultJSON, resultHash = string(raw), hashing.SHA256Hex(raw)
	}

	rows := make([]domain.LogDetail, 0, len(stages)+1)
	baseLatency := r.between(60, 320)
	ts := task.CreatedTs
	for j, stage := range stages {
		ts += r.between(60, 240)

		m := domain.LogDetail{
			TaskID:    taskID,
			EdgeAddr:  edge,
			Stage:     stage,
			Ts:        ts,
			CPUMs:     r.between(8, 85),
			MemMBPeak: r.between(60, 260),
			NetKB:     r.between(5, 80),
			LatencyMs: baseLatency + int64(j)*r.between(15, 60),
		}
		if bad && stage != domain.StageRecv {
			m.CPUMs = r.between(180, 900)
			m.MemMBPeak = r.between(600, 2400)
			m.NetKB = r.between(120, 900)
			m.LatencyMs = r.between(2500, 8000)
		}
		if stage == domain.StageResult {
			m.ResultHash = resultHash
		}

		row, err := r.submit(ctx, task, m, nt.Profile)
		if err != nil {
			return err
		}
		if row != nil {
			rows = append(rows, *row)
		}
	}

	if r.req.BadEdgeMode && r.rnd.Float64() < orphanRate {
		raw, err := hashing.Canonical(map[string]any{"orphan": true, "task_id": taskID})
		if err != nil {
			return fmt.Errorf("could not encode orphan row: %w", err)
		}
		rows = append(rows, domain.LogDetail{
			TaskID:     taskID,
			EdgeAddr:   edge,
			Stage:      domain.StageOrphan,
			Ts:         ts + 1,
			LogHash:    hashing.SHA256Hex([]byte(fmt.Sprintf("%d:orphan:%s", r.req.Seed, taskID))),
			DetailJSON: string(raw),
		})
	}

	var result *domain.TaskResult
	if finished {
		tx, err := r.ledger.SubmitTaskFeedback(ctx, r.actors.Vehicle, taskID, accepted)
		if err != nil {
			return fmt.Errorf("could not submit feedback for %s: %w", taskID, err)
		}
		result = &domain.TaskResult{
			TaskID:         taskID,
			ChosenEdgeAddr: edge,
			ResultJSON:     resultJSON,
			ResultHash:     resultHash,
			ResultSig:      hashing.SHA256Hex([]byte("sig:" + resultHash)),
			Verified:       accepted,
			TxHash:         tx.TxHash,
			Height:         tx.Height,
			Signer:         r.actors.Cloud,
		}
	} else if bad {
		r.stalled = append(r.stalled, task)
	}

	if len(rows) == 0 && result == nil {
		return nil
	}

	return r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.StoreLogDetails(ctx, rows...); err != nil {
			return fmt.Errorf("could not store log details of %s: %w", taskID, err)
		}
		if result == nil {
			return nil
		}
		if err := tx.UpsertTaskResult(ctx, *result); err != nil {
			return fmt.Errorf("could not store result of %s: %w", taskID, err)
		}

		return nil
	})
}

// consensusRound reports one validator round for every edge. In bad edge
// mode edge2 double signs and misses votes.
func (r *seedRun) consensusRound(ctx context.Context) error {
	for _, edge := range []string{r.actors.Edge1, r.actors.Edge2, r.actors.Edge3} {
		ev := ledger.ConsensusEvent{
			EdgeAddr:                 edge,
			MissedVotes:              r.between(0, 2),
			BlockParticipationPermil: r.between(900, 1000),
		}
		if r.req.BadEdgeMode && edge == r.actors.Edge2 {
			ev.MissedVotes = r.between(6, 12)
			ev.DoubleSigns = 1
			ev.BlockParticipationPermil = r.between(120, 400)
		}
		if _, err := r.ledger.ReportConsensusEvent(ctx, r.actors.Cloud, ev); err != nil {
			return fmt.Errorf("could not report consensus of %s: %w", edge, err)
		}
	}

	return nil
}

// reportStalled reports the tasks edge2 never finished as timed out.
func (r *seedRun) reportStalled(ctx context.Context) error {
	for _, task := range r.stalled {
		if _, err := r.ledger.ReportTaskEvent(ctx, r.actors.Cloud, ledger.TaskEvent{
			EdgeAddr: task.ChosenEdgeAddr,
			Timeout:  true,
		}); err != nil {
			return fmt.Errorf("could not report stalled task %s: %w", task.TaskID, err)
		}
	}

	return nil
}

// submit records the stage on the ledger and returns the matching database
// row. In bad edge mode the row may come back altered, or nil when dropped.
func (r *seedRun) submit(ctx context.Context, task domain.Task, m domain.LogDetail,
	profile string) (*domain.LogDetail, error) {
	detail := map[string]any{
		"taskId":      m.TaskID,
		"edgeAddr":    m.EdgeAddr,
		"stage":       m.Stage,
		"ts":          m.Ts,
		"cpu_ms":      m.CPUMs,
		"mem_mb_peak": m.MemMBPeak,
		"net_kb":      m.NetKB,
		"latency_ms":  m.LatencyMs,
		"resultHash":  m.ResultHash,
		"profile":     profile,
	}
	raw, err := hashing.Canonical(detail)
	if err != nil {
		return nil, fmt.Errorf("could not encode log detail: %w", err)
	}
	m.DetailJSON = string(raw)
	m.LogHash = hashing.SHA256Hex(raw)

	summary, err := r.ledger.SubmitLogSummary(ctx, task.ChosenEdgeAddr, domain.LogSummary{
		Stage:      m.Stage,
		TaskID:     m.TaskID,
		LogHash:    m.LogHash,
		ResultHash: m.ResultHash,
		CPU:        m.CPUMs,
		Mem:        m.MemMBPeak,
		Net:        m.NetKB,
		Latency:    m.LatencyMs,
		Ts:         m.Ts,
	})
	if err != nil {
		return nil, fmt.Errorf("could not submit %s log of %s: %w", m.Stage, m.TaskID, err)
	}
	m.TxHash = summary.TxHash
	m.Height = summary.Height
	m.Signer = summary.Signer
	m.MsgType = ledger.MsgSubmitLogSummary

	if !r.req.BadEdgeMode {
		return &m, nil
	}

	switch p := r.rnd.Float64(); {
	case p < dropRate:
		return nil, nil //nolint: nilnil
	case p < dropRate+tamperRate:
		detail["audit_note"] = "db_mutated"
		raw, err := hashing.Canonical(detail)
		if err != nil {
			return nil, fmt.Errorf("could not encode log detail: %w", err)
		}
		m.DetailJSON = string(raw)
	}

	return &m, nil
}
