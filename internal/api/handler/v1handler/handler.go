// Package v1handler implements the HTTP handlers of the tb3 REST surface. The
// routes come from the endpoint table in pkg/tb3 so that the backend and the
// client can never disagree on a path.
package v1handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"tb3/internal/audit"
	"tb3/internal/demo"
	"tb3/pkg/domain"
	"tb3/pkg/logger"
	"tb3/pkg/serrors"
	"tb3/pkg/tb3"
)

// Ledger is the ledger surface served over HTTP.
type Ledger interface {
	ChainID() string
	Admin() string
	Height() int64

	Edges() []domain.Edge
	Edge(addr string) (domain.Edge, error)
	Tasks() []domain.Task
	Task(id string) (domain.Task, error)
	LogsByTask(taskID string) ([]domain.LogSummary, error)
	Logs() []domain.LogSummary
	Proposals() []domain.Proposal
	Propagations() []domain.Propagation

	ApproveProposal(ctx context.Context, signer, id string) (domain.TxResult, error)
	RejectProposal(ctx context.Context, signer, id, reason string) (domain.TxResult, error)
}

// Deps are the services the handlers delegate to.
type Deps struct {
	Ledger   Ledger
	Auditor  audit.Auditor
	Demo     demo.Service
	Accounts []domain.Account
	// Now defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	deps Deps
	sec  *SecHandler
}

// New returns a Handler. A nil sec handler lets the backend sign governance
// writes as the admin without asking for a token.
func New(deps Deps, sec *SecHandler) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if sec == nil {
		sec = &SecHandler{}
	}

	return &Handler{deps: deps, sec: sec}
}

// Register mounts one handler per endpoint of the REST surface on mux.
func (h *Handler) Register(mux *http.ServeMux) error {
	handlers := map[string]http.HandlerFunc{
		tb3.OpHealth:          h.Health,
		tb3.OpAccounts:        h.Accounts,
		tb3.OpEdges:           h.Edges,
		tb3.OpEdge:            h.Edge,
		tb3.OpTasks:           h.Tasks,
		tb3.OpTask:            h.Task,
		tb3.OpLogsByTask:      h.LogsByTask,
		tb3.OpLogsAll:         h.LogsAll,
		tb3.OpAuditLogs:       h.AuditLogs,
		tb3.OpProposals:       h.Proposals,
		tb3.OpApproveProposal: h.ApproveProposal,
		tb3.OpRejectProposal:  h.RejectProposal,
		tb3.OpPropagations:    h.Propagations,
		tb3.OpDemoStatus:      h.DemoStatus,
		tb3.OpDemoSeed:        h.DemoSeed,
	}

	for _, e := range tb3.Endpoints() {
		fn, ok := handlers[e.Name]
		if !ok {
			return fmt.Errorf("no handler for operation %q", e.Name)
		}
		mux.Handle(e.Pattern(), fn)
	}

	return nil
}

// ErrorResponse is an error rendered for the wire.
type ErrorResponse struct {
	StatusCode int
	Response   tb3.ErrorBody
}

//nolint: gochecknoglobals
var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
}

// NewError maps err to its status and body. Internal errors are logged and
// never leak their message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	res := &ErrorResponse{
		StatusCode: serrors.HTTPStatus(err),
		Response:   tb3.ErrorBody{Code: kind.Error()},
	}

	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))
		res.Response.Message = "internal error"

		return res
	}

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		res.Response.Message = serr.Message()
	} else {
		res.Response.Message = defaultMessages[kind]
	}
	logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status", res.StatusCode))

	return res
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

// WriteError writes err as a JSON error body. It is shared with the
// middlewares mounted in front of the handlers.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	(&Handler{}).writeError(w, r, err)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
