package v1handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"tb3/pkg/domain"
	"tb3/pkg/logger"
	"tb3/pkg/serrors"
	"tb3/pkg/tb3"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, domain.Health{
		Status:  "ok",
		ChainID: h.deps.Ledger.ChainID(),
		Height:  h.deps.Ledger.Height(),
		Time:    h.deps.Now().UTC(),
	})
}

func (h *Handler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.deps.Accounts
	if accounts == nil {
		accounts = []domain.Account{}
	}
	writeJSON(r.Context(), w, http.StatusOK, tb3.AccountsEnvelope{Accounts: accounts})
}

func (h *Handler) Edges(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, tb3.EdgesEnvelope{Edges: h.deps.Ledger.Edges()})
}

func (h *Handler) Edge(w http.ResponseWriter, r *http.Request) {
	e, err := h.deps.Ledger.Edge(r.PathValue("addr"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, tb3.EdgeEnvelope{Edge: e})
}

func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, tb3.TasksEnvelope{Tasks: h.deps.Ledger.Tasks()})
}

func (h *Handler) Task(w http.ResponseWriter, r *http.Request) {
	t, err := h.deps.Ledger.Task(r.PathValue("taskId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, tb3.TaskEnvelope{Task: t})
}

func (h *Handler) LogsByTask(w http.ResponseWriter, r *http.Request) {
	logs, err := h.deps.Ledger.LogsByTask(r.PathValue("taskId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, tb3.LogsEnvelope{Log: logs})
}

func (h *Handler) LogsAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, tb3.LogsEnvelope{Log: h.deps.Ledger.Logs()})
}

func (h *Handler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.Auditor.TaskLogs(r.Context(), r.PathValue("taskId"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, report)
}

func (h *Handler) Proposals(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, tb3.ProposalsEnvelope{Proposals: h.deps.Ledger.Proposals()})
}

// signer resolves the address a governance write is signed as: the verified
// token subject, or the admin when verification is off.
func (h *Handler) signer(r *http.Request) (string, error) {
	if !h.sec.Enabled() {
		return h.deps.Ledger.Admin(), nil
	}

	token, err := BearerToken(r)
	if err != nil {
		return "", err
	}
	ctx, err := h.sec.HandleBearerAuth(r.Context(), token)
	if err != nil {
		return "", err
	}
	signer, _ := SignerFromContext(ctx)

	return signer, nil
}

func (h *Handler) ApproveProposal(w http.ResponseWriter, r *http.Request) {
	signer, err := h.signer(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	id := r.PathValue("id")
	tx, err := h.deps.Ledger.ApproveProposal(r.Context(), signer, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	logger.Info(r.Context(), "proposal approved", zap.String("proposalId", id), zap.String("signer", signer))
	writeJSON(r.Context(), w, http.StatusOK, tx)
}

func (h *Handler) RejectProposal(w http.ResponseWriter, r *http.Request) {
	signer, err := h.signer(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	id := r.PathValue("id")
	tx, err := h.deps.Ledger.RejectProposal(r.Context(), signer, id, r.URL.Query().Get(tb3.ReasonParam))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	logger.Info(r.Context(), "proposal rejected", zap.String("proposalId", id), zap.String("signer", signer))
	writeJSON(r.Context(), w, http.StatusOK, tx)
}

func (h *Handler) Propagations(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, tb3.PropagationsEnvelope{Propagations: h.deps.Ledger.Propagations()})
}

func (h *Handler) DemoStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.deps.Demo.Status(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, st)
}

// DemoSeed queues a seed run. Fields missing from the body keep their defaults
// and an empty body seeds with the defaults.
func (h *Handler) DemoSeed(w http.ResponseWriter, r *http.Request) {
	req := domain.DefaultDemoSeedRequest()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := sonic.ConfigStd.Unmarshal(body, &req); err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid seed request"))

			return
		}
	}

	res, err := h.deps.Demo.Enqueue(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusAccepted, res)
}
