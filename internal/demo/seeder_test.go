package demo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tb3/internal/audit"
	"tb3/internal/demo"
	"tb3/internal/ledger"
	"tb3/pkg/domain"
	"tb3/pkg/reputation"
	"tb3/pkg/serrors"
	"tb3/pkg/storage"
	mockstorage "tb3/pkg/storage/mock"
)

var seedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testActors() demo.Actors {
	return demo.Actors{
		Admin:   "cosmos1admin",
		Cloud:   "cosmos1cloud",
		Vehicle: "cosmos1vehicle",
		Edge1:   "cosmos1edge1",
		Edge2:   "cosmos1edge2",
		Edge3:   "cosmos1edge3",
	}
}

// memStore keeps seeded rows in slices. Writes made inside WithTx are staged
// and only kept when the callback succeeds.
type memStore struct {
	rows    []domain.LogDetail
	results []domain.TaskResult
	purges  int
	commits int
	// failUpsert, when set, fails the first result write and records its task.
	failUpsert error
	failedTask string
}

func (m *memStore) mock(ctrl *gomock.Controller) *mockstorage.MockStorage {
	store := mockstorage.NewMockStorage(ctrl)
	store.EXPECT().PurgeAuditData(gomock.Any()).DoAndReturn(func(context.Context) error {
		m.purges++
		m.rows, m.results = nil, nil

		return nil
	}).AnyTimes()
	store.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb func(storage.AllStorage) error) error {
			staged := &memStore{failUpsert: m.failUpsert}
			if err := cb(staged.tx(ctrl)); err != nil {
				m.failedTask = staged.failedTask

				return err
			}
			m.rows = append(m.rows, staged.rows...)
			m.results = append(m.results, staged.results...)
			m.commits++

			return nil
		}).AnyTimes()

	return store
}

func (m *memStore) tx(ctrl *gomock.Controller) *mockstorage.MockAllStorage {
	tx := mockstorage.NewMockAllStorage(ctrl)
	tx.EXPECT().StoreLogDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, details ...domain.LogDetail) error {
			m.rows = append(m.rows, details...)

			return nil
		}).AnyTimes()
	tx.EXPECT().UpsertTaskResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.TaskResult) error {
			if m.failUpsert != nil {
				m.failedTask = r.TaskID

				return m.failUpsert
			}
			m.results = append(m.results, r)

			return nil
		}).AnyTimes()

	return tx
}

// audit serves the committed rows to the auditor.
func (m *memStore) audit(ctrl *gomock.Controller) *mockstorage.MockAuditStorage {
	store := mockstorage.NewMockAuditStorage(ctrl)
	store.EXPECT().LogDetailsByTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, taskID string) ([]domain.LogDetail, error) {
			var out []domain.LogDetail
			for _, r := range m.rows {
				if r.TaskID == taskID {
					out = append(out, r)
				}
			}

			return out, nil
		}).AnyTimes()
	store.EXPECT().TaskResultByTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, taskID string) (*domain.TaskResult, error) {
			for _, r := range m.results {
				if r.TaskID == taskID {
					return &r, nil
				}
			}

			return nil, nil //nolint: nilnil
		}).AnyTimes()

	return store
}

func newSeeder(t *testing.T) (demo.Seeder, *ledger.Ledger, *memStore, *demo.Tracker, *gomock.Controller) {
	t.Helper()

	return newSeederWith(t, &memStore{})
}

func newSeederWith(t *testing.T, m *memStore) (demo.Seeder, *ledger.Ledger, *memStore, *demo.Tracker,
	*gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	actors := testActors()
	l := ledger.New(ledger.Options{
		ChainID: "tbthree",
		Admin:   actors.Admin,
		Now:     func() time.Time { return seedTime },
	})
	tracker := demo.NewTracker()
	s := demo.NewSeeder(l, m.mock(ctrl), actors, tracker, func() time.Time { return seedTime })

	return s, l, m, tracker, ctrl
}

func TestSeeder_Seed_Clean(t *testing.T) {
	s, l, m, tracker, ctrl := newSeeder(t)
	defer ctrl.Finish()
	ctx := context.Background()

	req := domain.DemoSeedRequest{Seed: 42, TasksPerRegion: 6, DaysSpan: 3}
	require.NoError(t, s.Seed(ctx, req))

	stats := l.Stats()
	require.Equal(t, 3, stats.Edges)
	require.Equal(t, 12, stats.Tasks)
	require.GreaterOrEqual(t, stats.Logs, 12)
	require.Empty(t, l.Propagations())
	require.Equal(t, 1, m.purges)

	tasks := l.Tasks()
	require.Equal(t, "demo-A-0001", tasks[0].TaskID)
	require.Equal(t, "demo-B-0006", tasks[11].TaskID)

	finished := 0
	for _, task := range tasks {
		require.LessOrEqual(t, task.CreatedTs, seedTime.Unix())
		require.GreaterOrEqual(t, task.CreatedTs, seedTime.Unix()-3*86400)
		if task.Region == "B" {
			require.Equal(t, "cosmos1edge3", task.ChosenEdgeAddr)
		}
		if task.Status == domain.TaskStatusFinished || task.Status == domain.TaskStatusFailed {
			finished++
		}
	}
	require.Len(t, m.results, finished)
	require.Positive(t, m.commits)

	for _, addr := range []string{"cosmos1edge1", "cosmos1edge2", "cosmos1edge3"} {
		e, err := l.Edge(addr)
		require.NoError(t, err)
		require.Equal(t, domain.EdgeStatusActive, e.Status, addr)
		require.Zero(t, e.DoubleSigns, addr)
		require.LessOrEqual(t, e.MissedVotes, int64(2), addr)
		require.GreaterOrEqual(t, e.BlockParticipationPermil, int64(900), addr)
	}

	// without bad edge mode every ledger log has an intact database row
	require.Len(t, m.rows, stats.Logs)
	auditor := audit.New(l, m.audit(ctrl))
	for _, task := range tasks {
		report, err := auditor.TaskLogs(ctx, task.TaskID)
		require.NoError(t, err)
		require.Equal(t, report.Summary.ChainRows, report.Summary.Matches, task.TaskID)
	}

	st := demo.New(mockstorage.NewMockJobStorage(ctrl), l, tracker, demo.Options{})
	status, err := st.Status(ctx)
	require.NoError(t, err)
	require.True(t, status.Seeded)
	require.False(t, status.Running)
	require.Equal(t, int64(42), status.Seed)
	require.Equal(t, 12, status.Tasks)
	require.Equal(t, stats.Height, status.Height)
	require.NotNil(t, status.LastSeedAt)
	require.Equal(t, seedTime, *status.LastSeedAt)
}

func TestSeeder_Seed_Deterministic(t *testing.T) {
	s, l, m, _, ctrl := newSeeder(t)
	defer ctrl.Finish()
	ctx := context.Background()
	req := domain.DefaultDemoSeedRequest()

	require.NoError(t, s.Seed(ctx, req))
	firstLogs, firstRows, firstHeight := l.Logs(), m.rows, l.Height()

	require.NoError(t, s.Seed(ctx, req))
	require.Equal(t, firstLogs, l.Logs())
	require.Equal(t, firstRows, m.rows)
	require.Equal(t, firstHeight, l.Height())
	require.Equal(t, 2, m.purges)

	require.NoError(t, s.Seed(ctx, domain.DemoSeedRequest{Seed: 43, TasksPerRegion: 15, DaysSpan: 7, BadEdgeMode: true}))
	require.NotEqual(t, firstLogs, l.Logs())
}

func TestSeeder_Seed_BadEdgeMode(t *testing.T) {
	s, l, m, _, ctrl := newSeeder(t)
	defer ctrl.Finish()
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx, domain.DemoSeedRequest{Seed: 42, TasksPerRegion: 40, DaysSpan: 7, BadEdgeMode: true}))

	for _, id := range []string{"demo-A-0005", "demo-A-0010", "demo-A-0040"} {
		task, err := l.Task(id)
		require.NoError(t, err)
		require.Equal(t, "cosmos1edge2", task.ChosenEdgeAddr)
	}

	props := l.Propagations()
	require.Len(t, props, 1)
	require.Equal(t, "cosmos1edge2", props[0].EdgeAddr)
	require.Equal(t, "A", props[0].FromRegion)
	require.Equal(t, "B", props[0].ToRegion)

	edge1, err := l.Edge("cosmos1edge1")
	require.NoError(t, err)
	edge2, err := l.Edge("cosmos1edge2")
	require.NoError(t, err)
	require.Less(t, edge2.Score, edge1.Score)
	require.Positive(t, edge2.Anomalies+edge2.Timeouts)

	// edge2 double signed while its proposal was pending
	require.NotEmpty(t, edge2.PendingProposalID)
	require.Equal(t, domain.EdgeStatusConsensusFrozen, edge2.Status)
	require.Equal(t, int64(1), edge2.DoubleSigns)
	require.GreaterOrEqual(t, edge2.MissedVotes, int64(6))
	require.Less(t, edge2.BlockParticipationPermil, int64(200))
	require.Equal(t, domain.EdgeStatusActive, edge1.Status)
	require.Zero(t, edge1.DoubleSigns)

	// unfinished edge2 tasks were reported as timed out
	stalled := 0
	for _, task := range l.Tasks() {
		if task.ChosenEdgeAddr == "cosmos1edge2" && task.Status == domain.TaskStatusRunning {
			stalled++
		}
	}
	logTimeouts := 0
	for _, ls := range l.Logs() {
		if ls.EdgeAddr == "cosmos1edge2" && reputation.Classify(ls.CPU, ls.Mem, ls.Net, ls.Latency) == reputation.ObsTimeout {
			logTimeouts++
		}
	}
	require.Equal(t, int64(logTimeouts+stalled), edge2.Timeouts)

	// the database no longer agrees with the ledger everywhere
	var sum domain.AuditSummary
	auditor := audit.New(l, m.audit(ctrl))
	for _, task := range l.Tasks() {
		report, err := auditor.TaskLogs(ctx, task.TaskID)
		require.NoError(t, err)
		sum.ChainRows += report.Summary.ChainRows
		sum.Matches += report.Summary.Matches
		sum.Mismatches += report.Summary.Mismatches
		sum.MissingDB += report.Summary.MissingDB
		sum.Orphans += report.Summary.Orphans
	}
	require.Equal(t, l.Stats().Logs, sum.ChainRows)
	require.Equal(t, sum.ChainRows, sum.Matches+sum.Mismatches+sum.MissingDB)
	require.Positive(t, sum.Mismatches+sum.MissingDB+sum.Orphans)
	require.Greater(t, sum.Matches, sum.Mismatches+sum.MissingDB)
}

func TestSeeder_Seed_StoreFailureLeavesNoPartialTask(t *testing.T) {
	boom := errors.New("result table unavailable")
	s, l, m, tracker, ctrl := newSeederWith(t, &memStore{failUpsert: boom})
	defer ctrl.Finish()
	ctx := context.Background()

	err := s.Seed(ctx, domain.DemoSeedRequest{Seed: 42, TasksPerRegion: 6, DaysSpan: 3})
	require.ErrorIs(t, err, boom)
	require.NotEmpty(t, m.failedTask)

	// the failing task's detail rows were rolled back with its result
	for _, row := range m.rows {
		require.NotEqual(t, m.failedTask, row.TaskID)
	}
	require.Empty(t, m.results)

	// the ledger side of the task already happened
	task, err := l.Task(m.failedTask)
	require.NoError(t, err)
	require.NotEmpty(t, task.LogHashes)

	st, err := demo.New(mockstorage.NewMockJobStorage(ctrl), l, tracker, demo.Options{}).Status(ctx)
	require.NoError(t, err)
	require.Contains(t, st.LastError, boom.Error())
	require.False(t, st.Running)
}

func TestSeeder_Seed_InvalidRequest(t *testing.T) {
	s, l, m, tracker, ctrl := newSeeder(t)
	defer ctrl.Finish()
	ctx := context.Background()

	err := s.Seed(ctx, domain.DemoSeedRequest{Seed: 1, TasksPerRegion: 0, DaysSpan: 7})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Zero(t, m.purges)
	require.Zero(t, l.Height())

	st, err := demo.New(mockstorage.NewMockJobStorage(ctrl), l, tracker, demo.Options{}).Status(ctx)
	require.NoError(t, err)
	require.False(t, st.Seeded)
	require.Empty(t, st.LastError)
}
