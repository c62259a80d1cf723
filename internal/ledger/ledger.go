// Package ledger is the in-process tb3 ledger: the state machine that keeps
// edges and their reputation, tasks and stage log summaries, governance
// proposals and reputation propagations. Every state-changing message is a
// transaction that bumps the block height and returns its hash.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tb3/pkg/domain"
	"tb3/pkg/logger"
	"tb3/pkg/serrors"
)

// ModuleName is recorded as the creator of proposals raised by the ledger itself.
const ModuleName = "tbthree"

// Options configures a Ledger.
type Options struct {
	// ChainID is mixed into every transaction hash.
	ChainID string
	// Admin is the only address allowed to decide governance proposals.
	Admin string
	// Now returns the block time. Defaults to time.Now.
	Now func() time.Time
}

// Ledger is safe for concurrent use. Reads return copies.
type Ledger struct {
	mu sync.RWMutex

	chainID string
	admin   string
	now     func() time.Time

	height int64
	seq    map[string]int64

	edges        map[string]*domain.Edge
	tasks        map[string]*domain.Task
	taskOrder    []string
	logs         []domain.LogSummary
	logHashes    map[string]struct{}
	proposals    map[string]*domain.Proposal
	propOrder    []string
	propagations []domain.Propagation
}

// New creates an empty ledger at height zero.
func New(opts Options) *Ledger {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	l := &Ledger{
		chainID: opts.ChainID,
		admin:   opts.Admin,
		now:     opts.Now,
	}
	l.resetLocked()

	return l
}

func (l *Ledger) resetLocked() {
	l.height = 0
	l.seq = map[string]int64{}
	l.edges = map[string]*domain.Edge{}
	l.tasks = map[string]*domain.Task{}
	l.taskOrder = nil
	l.logs = nil
	l.logHashes = map[string]struct{}{}
	l.proposals = map[string]*domain.Proposal{}
	l.propOrder = nil
	l.propagations = nil
}

// Reset drops all state and returns the ledger to height zero.
func (l *Ledger) Reset(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resetLocked()
	logger.Info(ctx, "ledger reset", zap.String("chainId", l.chainID))
}

// ChainID returns the chain identifier.
func (l *Ledger) ChainID() string { return l.chainID }

// Admin returns the governance admin address.
func (l *Ledger) Admin() string { return l.admin }

// Height returns the current block height.
func (l *Ledger) Height() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.height
}

func (l *Ledger) nextSeq(name string) string {
	l.seq[name]++

	return strconv.FormatInt(l.seq[name], 10)
}

// commitLocked records a transaction for msgType and returns it. payload is
// anything that makes the hash unique within the block.
func (l *Ledger) commitLocked(ctx context.Context, msgType, signer, payload string) domain.TxResult {
	l.height++
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s|%s|%s", l.chainID, l.height, msgType, signer, payload)))
	tx := domain.TxResult{
		TxHash: strings.ToUpper(hex.EncodeToString(sum[:])),
		Height: l.height,
	}

	logger.Debug(ctx, "tx committed",
		zap.String("msg", msgType),
		zap.String("signer", signer),
		zap.Int64("height", tx.Height),
		zap.String("txHash", tx.TxHash))

	return tx
}

// Stats counts the entities currently on the ledger.
type Stats struct {
	Edges     int
	Tasks     int
	Logs      int
	Proposals int
	Height    int64
}

// Stats returns entity counts and the height.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return Stats{
		Edges:     len(l.edges),
		Tasks:     len(l.tasks),
		Logs:      len(l.logs),
		Proposals: len(l.proposals),
		Height:    l.height,
	}
}

func numericLess(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}

// Edges returns all edges ordered by address.
func (l *Ledger) Edges() []domain.Edge {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Edge, 0, len(l.edges))
	for _, e := range l.edges {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b domain.Edge) int { return strings.Compare(a.EdgeAddr, b.EdgeAddr) })

	return out
}

// Edge returns the edge registered under addr.
func (l *Ledger) Edge(addr string) (domain.Edge, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.edges[addr]
	if !ok {
		return domain.Edge{}, serrors.With(serrors.ErrNotFound, "edge %s not found", addr)
	}

	return *e, nil
}

func copyTask(t *domain.Task) domain.Task {
	out := *t
	out.LogHashes = slices.Clone(t.LogHashes)

	return out
}

// Tasks returns all tasks in creation order.
func (l *Ledger) Tasks() []domain.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Task, 0, len(l.taskOrder))
	for _, id := range l.taskOrder {
		out = append(out, copyTask(l.tasks[id]))
	}

	return out
}

// Task returns the task with the given id.
func (l *Ledger) Task(id string) (domain.Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.tasks[id]
	if !ok {
		return domain.Task{}, serrors.With(serrors.ErrNotFound, "task %s not found", id)
	}

	return copyTask(t), nil
}

// LogsByTask returns the log summaries of a task in submission order.
func (l *Ledger) LogsByTask(taskID string) ([]domain.LogSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.tasks[taskID]; !ok {
		return nil, serrors.With(serrors.ErrNotFound, "task %s not found", taskID)
	}

	out := []domain.LogSummary{}
	for _, s := range l.logs {
		if s.TaskID == taskID {
			out = append(out, s)
		}
	}

	return out, nil
}

// Logs returns every log summary in submission order.
func (l *Ledger) Logs() []domain.LogSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]domain.LogSummary{}, l.logs...)
}

// Proposals returns all governance proposals ordered by id.
func (l *Ledger) Proposals() []domain.Proposal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := slices.Clone(l.propOrder)
	slices.SortFunc(ids, numericLess)

	out := make([]domain.Proposal, 0, len(ids))
	for _, id := range ids {
		out = append(out, *l.proposals[id])
	}

	return out
}

// Propagations returns every reputation propagation in creation order.
func (l *Ledger) Propagations() []domain.Propagation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]domain.Propagation{}, l.propagations...)
}
