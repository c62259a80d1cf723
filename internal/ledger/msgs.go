package ledger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tb3/pkg/domain"
	"tb3/pkg/logger"
	"tb3/pkg/reputation"
	"tb3/pkg/serrors"
)

// Message types recorded with every transaction.
const (
	MsgRegisterEdge         = "registerEdge"
	MsgCreateTask           = "createTask"
	MsgSubmitLogSummary     = "submitLogSummary"
	MsgSubmitTaskFeedback   = "submitTaskFeedback"
	MsgReportTaskEvent      = "reportTaskEvent"
	MsgReportConsensusEvent = "reportConsensusEvent"
	MsgApproveProposal      = "approveProposal"
	MsgRejectProposal       = "rejectProposal"
	MsgPropagateReputation  = "propagateReputation"
)

func stateOf(e *domain.Edge) reputation.State {
	return reputation.State{
		EvidencePos: e.EvidencePos,
		EvidenceNeg: e.EvidenceNeg,
		Opinion:     reputation.Opinion{B: e.B, D: e.D, U: e.U},
		Belief:      reputation.Belief{T: e.HmmT, S: e.HmmS, M: e.HmmM},
	}
}

func setState(e *domain.Edge, st reputation.State) {
	e.EvidencePos, e.EvidenceNeg = st.EvidencePos, st.EvidenceNeg
	e.B, e.D, e.U = st.Opinion.B, st.Opinion.D, st.Opinion.U
	e.HmmT, e.HmmS, e.HmmM = st.Belief.T, st.Belief.S, st.Belief.M
	e.Score = st.Score()
}

// RegisterEdge adds an edge to region with no evidence and a uniform HMM belief.
func (l *Ledger) RegisterEdge(ctx context.Context, creator, addr, region string) (domain.TxResult, error) {
	if addr == "" {
		return domain.TxResult{}, serrors.With(serrors.ErrBadRequest, "edge address is required")
	}
	if region == "" {
		return domain.TxResult{}, serrors.With(serrors.ErrBadRequest, "region is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.edges[addr]; ok {
		return domain.TxResult{}, serrors.With(serrors.ErrConflict, "edge %s already registered", addr)
	}

	e := &domain.Edge{
		EdgeAddr:  addr,
		Creator:   creator,
		Region:    region,
		Status:    domain.EdgeStatusActive,
		UpdatedAt: l.now().Unix(),
	}
	setState(e, reputation.NewState())
	l.edges[addr] = e

	return l.commitLocked(ctx, MsgRegisterEdge, creator, addr), nil
}

// NewTask describes a task a vehicle offloads.
type NewTask struct {
	TaskID      string
	Region      string
	Profile     string
	PayloadHash string
	// CreatedTs defaults to the block time when zero.
	CreatedTs int64
	// EdgeAddr pins the task to an edge of the region instead of letting the
	// ledger choose. The edge must be ACTIVE.
	EdgeAddr string
}

// CreateTask assigns the task to the best ACTIVE edge of its region: highest
// score first, lowest address on ties. A pinned edge skips the selection.
func (l *Ledger) CreateTask(ctx context.Context, vehicle string, nt NewTask) (domain.Task, domain.TxResult, error) {
	if nt.TaskID == "" || nt.Region == "" {
		return domain.Task{}, domain.TxResult{}, serrors.With(serrors.ErrBadRequest, "task id and region are required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.tasks[nt.TaskID]; ok {
		return domain.Task{}, domain.TxResult{}, serrors.With(serrors.ErrConflict, "task %s already exists", nt.TaskID)
	}

	var chosen *domain.Edge
	if nt.EdgeAddr != "" {
		e, ok := l.edges[nt.EdgeAddr]
		if !ok || e.Region != nt.Region {
			return domain.Task{}, domain.TxResult{},
				serrors.With(serrors.ErrBadRequest, "edge %s is not registered in region %s", nt.EdgeAddr, nt.Region)
		}
		if e.Status != domain.EdgeStatusActive {
			return domain.Task{}, domain.TxResult{},
				serrors.With(serrors.ErrUnavailable, "edge %s is %s", nt.EdgeAddr, e.Status)
		}
		chosen = e
	}
	if chosen == nil {
		chosen = l.bestEdgeLocked(nt.Region)
	}
	if chosen == nil {
		return domain.Task{}, domain.TxResult{},
			serrors.With(serrors.ErrUnavailable, "no active edge in region %s", nt.Region)
	}

	ts := nt.CreatedTs
	if ts == 0 {
		ts = l.now().Unix()
	}
	t := &domain.Task{
		TaskID:         nt.TaskID,
		VehicleAddr:    vehicle,
		ChosenEdgeAddr: chosen.EdgeAddr,
		Region:         nt.Region,
		Status:         domain.TaskStatusAssigned,
		Profile:        nt.Profile,
		PayloadHash:    nt.PayloadHash,
		LogHashes:      []string{},
		CreatedTs:      ts,
		UpdatedTs:      ts,
	}
	l.tasks[t.TaskID] = t
	l.taskOrder = append(l.taskOrder, t.TaskID)

	return copyTask(t), l.commitLocked(ctx, MsgCreateTask, vehicle, t.TaskID), nil
}

func (l *Ledger) bestEdgeLocked(region string) *domain.Edge {
	var best *domain.Edge
	for _, e := range l.edges {
		if e.Region != region || e.Status != domain.EdgeStatusActive {
			continue
		}
		if best == nil || e.Score > best.Score || (e.Score == best.Score && e.EdgeAddr < best.EdgeAddr) {
			best = e
		}
	}

	return best
}

// SubmitLogSummary records a stage log of a task. Only the task's chosen edge
// may submit, and not while it is task-frozen. The log's resource metrics feed
// the edge's reputation.
func (l *Ledger) SubmitLogSummary(ctx context.Context, creator string, s domain.LogSummary) (domain.LogSummary, error) {
	stage := domain.Stage(strings.ToUpper(string(s.Stage)))
	switch stage {
	case domain.StageRecv, domain.StageExec, domain.StageResult:
	default:
		return domain.LogSummary{}, serrors.With(serrors.ErrBadRequest, "unknown stage %q", s.Stage)
	}
	if s.LogHash == "" {
		return domain.LogSummary{}, serrors.With(serrors.ErrBadRequest, "log hash is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.tasks[s.TaskID]
	if !ok {
		return domain.LogSummary{}, serrors.With(serrors.ErrNotFound, "task %s not found", s.TaskID)
	}
	if t.ChosenEdgeAddr != creator {
		return domain.LogSummary{}, serrors.With(serrors.ErrForbidden, "%s is not the edge of task %s", creator, s.TaskID)
	}
	e, ok := l.edges[t.ChosenEdgeAddr]
	if !ok {
		return domain.LogSummary{}, serrors.With(serrors.ErrNotFound, "edge %s not found", t.ChosenEdgeAddr)
	}
	if e.Status == domain.EdgeStatusTaskFrozen {
		return domain.LogSummary{}, serrors.With(serrors.ErrForbidden, "edge %s is task frozen", e.EdgeAddr)
	}
	if _, dup := l.logHashes[s.LogHash]; dup {
		return domain.LogSummary{}, serrors.With(serrors.ErrConflict, "log %s already submitted", s.LogHash)
	}

	tx := l.commitLocked(ctx, MsgSubmitLogSummary, creator, s.LogHash)

	s.Stage = stage
	s.EdgeAddr = t.ChosenEdgeAddr
	s.Signer = creator
	s.TxHash = tx.TxHash
	s.Height = tx.Height
	if s.Ts == 0 {
		s.Ts = l.now().Unix()
	}
	l.logs = append(l.logs, s)
	l.logHashes[s.LogHash] = struct{}{}

	t.LogHashes = append(t.LogHashes, s.LogHash)
	switch stage {
	case domain.StageRecv:
		t.Status = domain.TaskStatusRunning
	case domain.StageResult:
		t.Status = domain.TaskStatusFinished
		if s.ResultHash != "" {
			t.ResultHash = s.ResultHash
		}
	}
	t.UpdatedTs = s.Ts

	obs := reputation.Classify(s.CPU, s.Mem, s.Net, s.Latency)
	switch obs {
	case reputation.ObsTimeout:
		e.Timeouts++
	case reputation.ObsAnomaly:
		e.Anomalies++
	}
	if stage == domain.StageResult {
		e.OnTime++
	}
	l.updateReputationLocked(ctx, e, obs, "log:"+string(stage))

	return s, nil
}

// SubmitTaskFeedback lets the task's vehicle accept or reject the result.
// A rejection counts as a timeout-grade observation and fails the task.
func (l *Ledger) SubmitTaskFeedback(ctx context.Context, vehicle, taskID string, accepted bool) (domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.tasks[taskID]
	if !ok {
		return domain.TxResult{}, serrors.With(serrors.ErrNotFound, "task %s not found", taskID)
	}
	if t.VehicleAddr != vehicle {
		return domain.TxResult{}, serrors.With(serrors.ErrForbidden, "%s does not own task %s", vehicle, taskID)
	}

	tx := l.commitLocked(ctx, MsgSubmitTaskFeedback, vehicle, fmt.Sprintf("%s|%t", taskID, accepted))

	if !accepted {
		t.Status = domain.TaskStatusFailed
		t.UpdatedTs = l.now().Unix()
	}

	if e, ok := l.edges[t.ChosenEdgeAddr]; ok {
		obs := reputation.ObsGood
		if accepted {
			e.Correct++
		} else {
			obs = reputation.ObsTimeout
			e.Complaints++
		}
		l.updateReputationLocked(ctx, e, obs, "vehicleFeedback")
	}

	return tx, nil
}

// updateReputationLocked applies obs to the edge and raises a proposal when
// its score drops under the threshold.
func (l *Ledger) updateReputationLocked(ctx context.Context, e *domain.Edge, obs reputation.Observation, source string) {
	setState(e, stateOf(e).Apply(obs))
	e.UpdatedAt = l.now().Unix()

	if !reputation.NeedsProposal(e.Score, e.PendingProposalID != "") {
		return
	}

	p := &domain.Proposal{
		ProposalID: l.nextSeq("proposal"),
		EdgeAddr:   e.EdgeAddr,
		Status:     domain.ProposalStatusPending,
		Reason:     reputation.ProposalReason(e.Score, source),
		Creator:    ModuleName,
		CreatedAt:  e.UpdatedAt,
	}
	l.proposals[p.ProposalID] = p
	l.propOrder = append(l.propOrder, p.ProposalID)
	e.PendingProposalID = p.ProposalID

	logger.Info(ctx, "governance proposal raised",
		zap.String("proposalId", p.ProposalID),
		zap.String("edge", e.EdgeAddr),
		zap.Int64("score", e.Score),
		zap.String("observation", obs.String()))
}

func (l *Ledger) pendingProposalLocked(signer, id string) (*domain.Proposal, error) {
	if l.admin == "" {
		return nil, serrors.With(serrors.ErrForbidden, "admin not set")
	}
	if signer != l.admin {
		return nil, serrors.With(serrors.ErrForbidden, "only admin can decide proposals")
	}
	p, ok := l.proposals[id]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "proposal %s not found", id)
	}
	if !strings.EqualFold(string(p.Status), string(domain.ProposalStatusPending)) {
		return nil, serrors.With(serrors.ErrConflict, "proposal %s is not pending: %s", id, p.Status)
	}

	return p, nil
}

// ApproveProposal marks a pending proposal approved and returns its edge to ACTIVE.
func (l *Ledger) ApproveProposal(ctx context.Context, signer, id string) (domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.pendingProposalLocked(signer, id)
	if err != nil {
		return domain.TxResult{}, err
	}

	now := l.now().Unix()
	p.Status = domain.ProposalStatusApproved
	p.ApprovedBy = signer
	p.DecidedAt = now

	if e, ok := l.edges[p.EdgeAddr]; ok && e.PendingProposalID == p.ProposalID {
		e.PendingProposalID = ""
		e.Status = domain.EdgeStatusActive
		e.UpdatedAt = now
	}

	return l.commitLocked(ctx, MsgApproveProposal, signer, id), nil
}

// RejectProposal marks a pending proposal rejected, appending reason to it.
// A frozen edge stays frozen.
func (l *Ledger) RejectProposal(ctx context.Context, signer, id, reason string) (domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.pendingProposalLocked(signer, id)
	if err != nil {
		return domain.TxResult{}, err
	}

	if e, ok := l.edges[p.EdgeAddr]; ok && e.PendingProposalID == p.ProposalID {
		e.PendingProposalID = ""
	}

	p.Status = domain.ProposalStatusRejected
	p.ApprovedBy = signer
	p.DecidedAt = l.now().Unix()
	if reason != "" {
		p.Reason += " | reject:" + reason
	}

	return l.commitLocked(ctx, MsgRejectProposal, signer, id+"|"+reason), nil
}

// PropagateReputation records a snapshot of the edge's reputation carried
// from one region to another.
func (l *Ledger) PropagateReputation(ctx context.Context, creator, addr, from, to, reason string) (domain.Propagation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.edges[addr]
	if !ok {
		return domain.Propagation{}, serrors.With(serrors.ErrNotFound, "edge %s not found", addr)
	}

	snap := reputation.Snapshot{EdgeAddr: e.EdgeAddr, State: stateOf(e), UpdatedAt: e.UpdatedAt}
	tx := l.commitLocked(ctx, MsgPropagateReputation, creator, addr+"|"+from+"|"+to)

	p := domain.Propagation{
		PropagationID:   l.nextSeq("propagation"),
		EdgeAddr:        addr,
		FromRegion:      from,
		ToRegion:        to,
		RepSnapshotHash: snap.Hash(),
		Reason:          reason,
		Height:          tx.Height,
		CreatedAt:       l.now().Unix(),
	}
	l.propagations = append(l.propagations, p)

	return p, nil
}

// TaskEvent is an out of band report on how an edge handled a task, sent by
// whoever supervises execution.
type TaskEvent struct {
	EdgeAddr        string
	OnTime          bool
	Correct         bool
	ResourceAnomaly bool
	Timeout         bool
}

// ReportTaskEvent feeds a task event into the edge's reputation. A timeout or
// an incorrect result is a timeout-grade observation, a resource anomaly an
// anomaly. A timeout-grade report against an edge that is under review
// freezes it for tasks until the proposal is approved.
func (l *Ledger) ReportTaskEvent(ctx context.Context, creator string, ev TaskEvent) (domain.TxResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.edges[ev.EdgeAddr]
	if !ok {
		return domain.TxResult{}, serrors.With(serrors.ErrNotFound, "edge %s not found", ev.EdgeAddr)
	}

	tx := l.commitLocked(ctx, MsgReportTaskEvent, creator,
		fmt.Sprintf("%s|%t|%t|%t|%t", ev.EdgeAddr, ev.OnTime, ev.Correct, ev.ResourceAnomaly, ev.Timeout))

	if ev.OnTime {
		e.OnTime++
	}
	if ev.Correct {
		e.Correct++
	}
	if ev.ResourceAnomaly {
		e.ResourceAnomaly++
		e.Anomalies++
	}
	if ev.Timeout {
		e.Timeouts++
	}

	obs := reputation.ObsGood
	switch {
	case ev.Timeout || !ev.Correct:
		obs = reputation.ObsTimeout
	case ev.ResourceAnomaly:
		obs = reputation.ObsAnomaly
	}
	l.updateReputationLocked(ctx, e, obs, "taskEvent")
	if obs == reputation.ObsTimeout {
		l.freezeLocked(ctx, e, domain.EdgeStatusTaskFrozen)
	}

	return tx, nil
}

// ConsensusEvent reports an edge's behaviour as a block validator.
type ConsensusEvent struct {
	EdgeAddr    string
	MissedVotes int64
	DoubleSigns int64
	// BlockParticipationPermil is the share of recent blocks the edge signed, 0..1000.
	BlockParticipationPermil int64
}

// ReportConsensusEvent feeds validator behaviour into the edge's reputation.
// Missed votes and double signs accumulate, participation is replaced. A
// double sign is a timeout-grade observation; more than five missed votes or
// participation under 20% is an anomaly. A double sign by an edge under
// review freezes it out of consensus and task scheduling.
func (l *Ledger) ReportConsensusEvent(ctx context.Context, creator string, ev ConsensusEvent) (domain.TxResult, error) {
	if ev.MissedVotes < 0 || ev.DoubleSigns < 0 {
		return domain.TxResult{}, serrors.With(serrors.ErrBadRequest, "missed votes and double signs must not be negative")
	}
	if ev.BlockParticipationPermil < 0 || ev.BlockParticipationPermil > 1000 {
		return domain.TxResult{}, serrors.With(serrors.ErrBadRequest,
			"block participation %d is outside 0..1000", ev.BlockParticipationPermil)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.edges[ev.EdgeAddr]
	if !ok {
		return domain.TxResult{}, serrors.With(serrors.ErrNotFound, "edge %s not found", ev.EdgeAddr)
	}

	tx := l.commitLocked(ctx, MsgReportConsensusEvent, creator,
		fmt.Sprintf("%s|%d|%d|%d", ev.EdgeAddr, ev.MissedVotes, ev.DoubleSigns, ev.BlockParticipationPermil))

	e.MissedVotes += ev.MissedVotes
	e.DoubleSigns += ev.DoubleSigns
	e.BlockParticipationPermil = ev.BlockParticipationPermil

	obs := reputation.ObsGood
	switch {
	case ev.DoubleSigns > 0:
		obs = reputation.ObsTimeout
	case ev.MissedVotes > 5 || ev.BlockParticipationPermil < 200:
		obs = reputation.ObsAnomaly
	}
	l.updateReputationLocked(ctx, e, obs, "consensus")
	if ev.DoubleSigns > 0 {
		l.freezeLocked(ctx, e, domain.EdgeStatusConsensusFrozen)
	}

	return tx, nil
}

// freezeLocked moves an ACTIVE edge with a pending proposal to status.
// Approving the proposal makes it ACTIVE again; rejecting it leaves it frozen.
func (l *Ledger) freezeLocked(ctx context.Context, e *domain.Edge, status domain.EdgeStatus) {
	if e.PendingProposalID == "" || e.Status != domain.EdgeStatusActive {
		return
	}

	e.Status = status
	logger.Info(ctx, "edge frozen",
		zap.String("edge", e.EdgeAddr),
		zap.String("status", string(status)),
		zap.String("proposalId", e.PendingProposalID))
}
