package domain

// ProposalStatus represents the decision state of a governance proposal.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

// Proposal is a governance item about an edge, subject to approve/reject by the admin.
type Proposal struct {
	ProposalID string         `json:"proposalId"`
	EdgeAddr   string         `json:"edgeAddr"`
	Status     ProposalStatus `json:"status"`
	Reason     string         `json:"reason"`
	Creator    string         `json:"creator"`
	// ApprovedBy is the admin that decided the proposal, whichever way it went.
	ApprovedBy string `json:"approvedBy"`
	CreatedAt  int64  `json:"createdAt,string"`
	DecidedAt  int64  `json:"decidedAt,string"`
}

// Propagation records a reputation snapshot carried from one region to another.
type Propagation struct {
	PropagationID   string `json:"propagationId"`
	EdgeAddr        string `json:"edgeAddr"`
	FromRegion      string `json:"fromRegion"`
	ToRegion        string `json:"toRegion"`
	RepSnapshotHash string `json:"repSnapshotHash"`
	Reason          string `json:"reason"`
	Height          int64  `json:"height,string"`
	CreatedAt       int64  `json:"createdAt,string"`
}

// TxResult identifies the ledger transaction a state change was committed in.
type TxResult struct {
	TxHash string `json:"txHash"`
	Height int64  `json:"height,string"`
}
