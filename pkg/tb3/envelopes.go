package tb3

import "tb3/pkg/domain"

// Wire envelopes of list and single-entity responses. Keys follow the
// ledger's REST gateway naming.
type (
	AccountsEnvelope struct {
		Accounts []domain.Account `json:"accounts"`
	}
	EdgesEnvelope struct {
		Edges []domain.Edge `json:"edges"`
	}
	EdgeEnvelope struct {
		Edge domain.Edge `json:"edge"`
	}
	TasksEnvelope struct {
		Tasks []domain.Task `json:"tasks"`
	}
	TaskEnvelope struct {
		Task domain.Task `json:"task"`
	}
	LogsEnvelope struct {
		Log []domain.LogSummary `json:"log"`
	}
	ProposalsEnvelope struct {
		Proposals []domain.Proposal `json:"governanceProposal"`
	}
	PropagationsEnvelope struct {
		Propagations []domain.Propagation `json:"reputationPropagation"`
	}
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReasonParam is the query parameter carrying a rejection reason.
const ReasonParam = "reason"
