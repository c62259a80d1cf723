package ledger_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tb3/internal/ledger"
	"tb3/pkg/domain"
	"tb3/pkg/reputation"
	"tb3/pkg/serrors"
)

const (
	admin   = "cosmos1admin"
	vehicle = "cosmos1vehicle"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	clock := time.Unix(1_700_000_000, 0)

	return ledger.New(ledger.Options{
		ChainID: "tbthree",
		Admin:   admin,
		Now:     func() time.Time { return clock },
	})
}

func seedEdges(t *testing.T, l *ledger.Ledger) {
	t.Helper()
	ctx := context.Background()
	for _, e := range []struct{ addr, region string }{{"e1", "A"}, {"e2", "A"}, {"e3", "B"}} {
		_, err := l.RegisterEdge(ctx, admin, e.addr, e.region)
		require.NoError(t, err)
	}
}

func proposal(t *testing.T, l *ledger.Ledger, id string) domain.Proposal {
	t.Helper()
	for _, p := range l.Proposals() {
		if p.ProposalID == id {
			return p
		}
	}
	require.Failf(t, "proposal not found", "id %s", id)

	return domain.Proposal{}
}

func badLog(taskID, hash string) domain.LogSummary {
	return domain.LogSummary{TaskID: taskID, Stage: domain.StageExec, LogHash: hash, CPU: 10, Mem: 100, Net: 10, Latency: 6000}
}

func TestRegisterEdge(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	tx, err := l.RegisterEdge(ctx, admin, "e1", "A")
	require.NoError(t, err)
	require.Equal(t, int64(1), tx.Height)
	require.Len(t, tx.TxHash, 64)

	e, err := l.Edge("e1")
	require.NoError(t, err)
	require.Equal(t, domain.EdgeStatusActive, e.Status)
	require.Equal(t, reputation.Scale, e.U)
	require.Equal(t, int64(500_000), e.Score)
	require.Equal(t, reputation.Scale, e.HmmT+e.HmmS+e.HmmM)

	_, err = l.RegisterEdge(ctx, admin, "e1", "B")
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = l.RegisterEdge(ctx, admin, "", "A")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	_, err = l.RegisterEdge(ctx, admin, "e9", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = l.Edge("nope")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, int64(1), l.Height(), "failed messages do not commit")
}

func TestCreateTask_EdgeSelection(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	task, _, err := l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "A", Profile: "default"})
	require.NoError(t, err)
	require.Equal(t, "e1", task.ChosenEdgeAddr, "ties go to the lowest address")
	require.Equal(t, domain.TaskStatusAssigned, task.Status)
	require.Equal(t, int64(1_700_000_000), task.CreatedTs)

	// e1 misbehaves, so e2 now has the best score in region A
	_, err = l.SubmitLogSummary(ctx, "e1", badLog("t1", "h1"))
	require.NoError(t, err)

	task, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t2", Region: "A"})
	require.NoError(t, err)
	require.Equal(t, "e2", task.ChosenEdgeAddr)

	_, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t2", Region: "A"})
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t3", Region: "Z"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	require.Equal(t, []string{"t1", "t2"}, []string{l.Tasks()[0].TaskID, l.Tasks()[1].TaskID})

	task, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t4", Region: "A", EdgeAddr: "e1"})
	require.NoError(t, err)
	require.Equal(t, "e1", task.ChosenEdgeAddr, "pinned edge wins over the best score")

	_, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t5", Region: "B", EdgeAddr: "e1"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSubmitLogSummary(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	_, _, err := l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "B"})
	require.NoError(t, err)

	good := domain.LogSummary{TaskID: "t1", Stage: "recv", LogHash: "h1", CPU: 40, Mem: 120, Net: 30, Latency: 200, Ts: 1_700_000_100}

	_, err = l.SubmitLogSummary(ctx, "e1", good)
	require.ErrorIs(t, err, serrors.ErrForbidden, "only the chosen edge may submit")

	missing := good
	missing.TaskID = "t404"
	_, err = l.SubmitLogSummary(ctx, "e3", missing)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	bad := good
	bad.Stage = "DONE"
	_, err = l.SubmitLogSummary(ctx, "e3", bad)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	s, err := l.SubmitLogSummary(ctx, "e3", good)
	require.NoError(t, err)
	require.Equal(t, domain.StageRecv, s.Stage)
	require.Equal(t, "e3", s.EdgeAddr)
	require.Equal(t, "e3", s.Signer)
	require.Equal(t, l.Height(), s.Height)
	require.NotEmpty(t, s.TxHash)

	_, err = l.SubmitLogSummary(ctx, "e3", good)
	require.ErrorIs(t, err, serrors.ErrConflict, "a log hash is accepted once")

	task, err := l.Task("t1")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusRunning, task.Status)

	result := domain.LogSummary{TaskID: "t1", Stage: domain.StageResult, LogHash: "h2", ResultHash: "r1", Latency: 300}
	_, err = l.SubmitLogSummary(ctx, "e3", result)
	require.NoError(t, err)

	task, err = l.Task("t1")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusFinished, task.Status)
	require.Equal(t, "r1", task.ResultHash)
	require.Equal(t, []string{"h1", "h2"}, task.LogHashes)

	e, err := l.Edge("e3")
	require.NoError(t, err)
	require.Equal(t, int64(2), e.EvidencePos)
	require.Equal(t, int64(1), e.OnTime)

	logs, err := l.LogsByTask("t1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Len(t, l.Logs(), 2)

	_, err = l.LogsByTask("t404")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestReportTaskEvent(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	_, err := l.ReportTaskEvent(ctx, admin, ledger.TaskEvent{EdgeAddr: "nope", Correct: true})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "B"})
	require.NoError(t, err)

	steps := []struct {
		name    string
		ev      ledger.TaskEvent
		pos     int64
		neg     int64
		status  domain.EdgeStatus
		pending bool
	}{
		{"on time and correct is good", ledger.TaskEvent{OnTime: true, Correct: true}, 1, 0, domain.EdgeStatusActive, false},
		{"resource anomaly", ledger.TaskEvent{OnTime: true, Correct: true, ResourceAnomaly: true}, 1, 1, domain.EdgeStatusActive, false},
		{"incorrect result", ledger.TaskEvent{OnTime: true}, 1, 2, domain.EdgeStatusActive, false},
		{"timeout without a pending proposal", ledger.TaskEvent{Correct: true, Timeout: true}, 1, 3, domain.EdgeStatusActive, false},
		{"timeout raises a proposal and freezes", ledger.TaskEvent{Correct: true, Timeout: true}, 1, 4, domain.EdgeStatusTaskFrozen, true},
	}
	for _, step := range steps {
		step.ev.EdgeAddr = "e3"
		tx, err := l.ReportTaskEvent(ctx, admin, step.ev)
		require.NoError(t, err, step.name)
		require.Equal(t, l.Height(), tx.Height, step.name)

		e, err := l.Edge("e3")
		require.NoError(t, err)
		require.Equal(t, step.pos, e.EvidencePos, step.name)
		require.Equal(t, step.neg, e.EvidenceNeg, step.name)
		require.Equal(t, step.status, e.Status, step.name)
		require.Equal(t, step.pending, e.PendingProposalID != "", step.name)
	}

	e, err := l.Edge("e3")
	require.NoError(t, err)
	require.Equal(t, int64(3), e.OnTime)
	require.Equal(t, int64(4), e.Correct)
	require.Equal(t, int64(1), e.ResourceAnomaly)
	require.Equal(t, int64(1), e.Anomalies)
	require.Equal(t, int64(2), e.Timeouts)
	require.Contains(t, proposal(t, l, e.PendingProposalID).Reason, "; taskEvent")

	_, err = l.SubmitLogSummary(ctx, "e3", domain.LogSummary{TaskID: "t1", Stage: domain.StageRecv, LogHash: "h1"})
	require.ErrorIs(t, err, serrors.ErrForbidden, "task frozen edges submit no logs")
	_, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t2", Region: "B"})
	require.ErrorIs(t, err, serrors.ErrUnavailable, "frozen edges are not scheduled")

	_, err = l.ApproveProposal(ctx, admin, e.PendingProposalID)
	require.NoError(t, err)

	e, err = l.Edge("e3")
	require.NoError(t, err)
	require.Equal(t, domain.EdgeStatusActive, e.Status)
	_, err = l.SubmitLogSummary(ctx, "e3", domain.LogSummary{TaskID: "t1", Stage: domain.StageRecv, LogHash: "h1"})
	require.NoError(t, err)
}

func TestReportConsensusEvent(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	for _, ev := range []ledger.ConsensusEvent{
		{EdgeAddr: "e1", MissedVotes: -1, BlockParticipationPermil: 900},
		{EdgeAddr: "e1", DoubleSigns: -1, BlockParticipationPermil: 900},
		{EdgeAddr: "e1", BlockParticipationPermil: 1001},
	} {
		_, err := l.ReportConsensusEvent(ctx, admin, ev)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
	_, err := l.ReportConsensusEvent(ctx, admin, ledger.ConsensusEvent{EdgeAddr: "nope", BlockParticipationPermil: 900})
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, int64(3), l.Height(), "rejected reports do not commit")

	steps := []struct {
		name   string
		ev     ledger.ConsensusEvent
		pos    int64
		neg    int64
		status domain.EdgeStatus
	}{
		{"healthy validator", ledger.ConsensusEvent{MissedVotes: 2, BlockParticipationPermil: 900}, 1, 0, domain.EdgeStatusActive},
		{"more than five missed votes", ledger.ConsensusEvent{MissedVotes: 6, BlockParticipationPermil: 900}, 1, 1, domain.EdgeStatusActive},
		{"low participation", ledger.ConsensusEvent{BlockParticipationPermil: 150}, 1, 2, domain.EdgeStatusActive},
		{"double sign without a pending proposal", ledger.ConsensusEvent{DoubleSigns: 1, BlockParticipationPermil: 900}, 1, 3, domain.EdgeStatusActive},
		{"double sign under review freezes", ledger.ConsensusEvent{DoubleSigns: 1, BlockParticipationPermil: 850}, 1, 4, domain.EdgeStatusConsensusFrozen},
	}
	for _, step := range steps {
		step.ev.EdgeAddr = "e1"
		_, err := l.ReportConsensusEvent(ctx, admin, step.ev)
		require.NoError(t, err, step.name)

		e, err := l.Edge("e1")
		require.NoError(t, err)
		require.Equal(t, step.pos, e.EvidencePos, step.name)
		require.Equal(t, step.neg, e.EvidenceNeg, step.name)
		require.Equal(t, step.status, e.Status, step.name)
	}

	e, err := l.Edge("e1")
	require.NoError(t, err)
	require.Equal(t, int64(8), e.MissedVotes)
	require.Equal(t, int64(2), e.DoubleSigns)
	require.Equal(t, int64(850), e.BlockParticipationPermil, "participation is replaced, not summed")
	require.Contains(t, proposal(t, l, e.PendingProposalID).Reason, "; consensus")

	task, _, err := l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "A"})
	require.NoError(t, err)
	require.Equal(t, "e2", task.ChosenEdgeAddr, "consensus frozen edges get no new tasks")

	// rejecting the proposal keeps the edge out
	_, err = l.RejectProposal(ctx, admin, e.PendingProposalID, "confirmed")
	require.NoError(t, err)
	e, err = l.Edge("e1")
	require.NoError(t, err)
	require.Equal(t, domain.EdgeStatusConsensusFrozen, e.Status)
	require.Empty(t, e.PendingProposalID)
}

func TestAutoProposalAndGovernance(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	_, _, err := l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "A"})
	require.NoError(t, err)

	_, err = l.SubmitLogSummary(ctx, "e1", badLog("t1", "h1"))
	require.NoError(t, err)
	require.Empty(t, l.Proposals(), "score 0.33 is above the threshold")

	_, err = l.SubmitLogSummary(ctx, "e1", badLog("t1", "h2"))
	require.NoError(t, err)

	props := l.Proposals()
	require.Len(t, props, 1)
	require.Equal(t, "1", props[0].ProposalID)
	require.Equal(t, "e1", props[0].EdgeAddr)
	require.Equal(t, domain.ProposalStatusPending, props[0].Status)
	require.Equal(t, "auto: score<thr (score=250000, thr=300000); log:EXEC", props[0].Reason)

	e, err := l.Edge("e1")
	require.NoError(t, err)
	require.Equal(t, "1", e.PendingProposalID)
	require.Equal(t, int64(2), e.Timeouts)

	// an open proposal suppresses new ones
	_, err = l.SubmitLogSummary(ctx, "e1", badLog("t1", "h3"))
	require.NoError(t, err)
	require.Len(t, l.Proposals(), 1)

	_, err = l.ApproveProposal(ctx, "e2", "1")
	require.ErrorIs(t, err, serrors.ErrForbidden)
	_, err = l.ApproveProposal(ctx, admin, "99")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	tx, err := l.ApproveProposal(ctx, admin, "1")
	require.NoError(t, err)
	require.Equal(t, l.Height(), tx.Height)

	p := proposal(t, l, "1")
	require.Equal(t, domain.ProposalStatusApproved, p.Status)
	require.Equal(t, admin, p.ApprovedBy)
	require.Equal(t, int64(1_700_000_000), p.DecidedAt)

	e, err = l.Edge("e1")
	require.NoError(t, err)
	require.Empty(t, e.PendingProposalID)
	require.Equal(t, domain.EdgeStatusActive, e.Status)

	_, err = l.ApproveProposal(ctx, admin, "1")
	require.ErrorIs(t, err, serrors.ErrConflict)
	_, err = l.RejectProposal(ctx, admin, "1", "late")
	require.ErrorIs(t, err, serrors.ErrConflict)

	// the next bad observation raises proposal 2, which gets rejected
	_, err = l.SubmitLogSummary(ctx, "e1", badLog("t1", "h4"))
	require.NoError(t, err)
	_, err = l.RejectProposal(ctx, admin, "2", "spam")
	require.NoError(t, err)

	p = proposal(t, l, "2")
	require.Equal(t, domain.ProposalStatusRejected, p.Status)
	require.Contains(t, p.Reason, " | reject:spam")

	e, err = l.Edge("e1")
	require.NoError(t, err)
	require.Empty(t, e.PendingProposalID)
}

func TestGovernance_NoAdmin(t *testing.T) {
	l := ledger.New(ledger.Options{ChainID: "tbthree"})

	_, err := l.ApproveProposal(context.Background(), "", "1")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestSubmitTaskFeedback(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	_, _, err := l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "B"})
	require.NoError(t, err)
	_, _, err = l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t2", Region: "B"})
	require.NoError(t, err)

	_, err = l.SubmitTaskFeedback(ctx, "someone", "t1", true)
	require.ErrorIs(t, err, serrors.ErrForbidden)
	_, err = l.SubmitTaskFeedback(ctx, vehicle, "t404", true)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = l.SubmitTaskFeedback(ctx, vehicle, "t1", true)
	require.NoError(t, err)
	_, err = l.SubmitTaskFeedback(ctx, vehicle, "t2", false)
	require.NoError(t, err)

	e, err := l.Edge("e3")
	require.NoError(t, err)
	require.Equal(t, int64(1), e.Correct)
	require.Equal(t, int64(1), e.Complaints)
	require.Equal(t, int64(1), e.EvidencePos)
	require.Equal(t, int64(1), e.EvidenceNeg)

	task, err := l.Task("t2")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusFailed, task.Status)
}

func TestPropagateReputation(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	p, err := l.PropagateReputation(ctx, admin, "e3", "B", "A", "handover")
	require.NoError(t, err)
	require.Equal(t, "1", p.PropagationID)
	require.Equal(t, l.Height(), p.Height)

	want := reputation.Snapshot{EdgeAddr: "e3", State: reputation.NewState(), UpdatedAt: 1_700_000_000}.Hash()
	require.Equal(t, want, p.RepSnapshotHash)

	_, err = l.PropagateReputation(ctx, admin, "nope", "B", "A", "")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.Len(t, l.Propagations(), 1)
}

func TestReadsReturnCopies(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedEdges(t, l)

	_, _, err := l.CreateTask(ctx, vehicle, ledger.NewTask{TaskID: "t1", Region: "B"})
	require.NoError(t, err)
	_, err = l.SubmitLogSummary(ctx, "e3", domain.LogSummary{TaskID: "t1", Stage: domain.StageRecv, LogHash: "h1"})
	require.NoError(t, err)

	task, err := l.Task("t1")
	require.NoError(t, err)
	task.LogHashes[0] = "tampered"
	task.Status = domain.TaskStatusFailed

	again, err := l.Task("t1")
	require.NoError(t, err)
	require.Equal(t, []string{"h1"}, again.LogHashes)
	require.Equal(t, domain.TaskStatusRunning, again.Status)

	require.NotNil(t, ledger.New(ledger.Options{}).Propagations())
	require.NotNil(t, ledger.New(ledger.Options{}).Logs())
}

func TestResetAndConcurrency(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 50)
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = l.RegisterEdge(ctx, admin, fmt.Sprintf("edge-%02d", i), "A")
			_ = l.Edges()
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	st := l.Stats()
	require.Equal(t, 50, st.Edges)
	require.Equal(t, int64(50), st.Height)
	require.Equal(t, "edge-00", l.Edges()[0].EdgeAddr)

	l.Reset(ctx)
	require.Equal(t, ledger.Stats{}, l.Stats())
}
