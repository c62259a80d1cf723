package domain

// EdgeStatus is the scheduling state of an edge.
type EdgeStatus string

const (
	// EdgeStatusActive edges can be chosen for new tasks.
	EdgeStatusActive EdgeStatus = "ACTIVE"
	// EdgeStatusTaskFrozen edges may not submit further task logs and get no new tasks.
	EdgeStatusTaskFrozen EdgeStatus = "TASK_FROZEN"
	// EdgeStatusConsensusFrozen edges are excluded from consensus duties and get no new tasks.
	EdgeStatusConsensusFrozen EdgeStatus = "CONSENSUS_FROZEN"
)

// Edge is an address-identified compute participant and its reputation state.
// Score, B, D, U and the HMM probabilities are fixed-point values scaled by 1e6.
type Edge struct {
	EdgeAddr string     `json:"edgeAddr"`
	Creator  string     `json:"creator"`
	Region   string     `json:"region"`
	Status   EdgeStatus `json:"status"`

	Score int64 `json:"score,string"`
	B     int64 `json:"b,string"`
	D     int64 `json:"d,string"`
	U     int64 `json:"u,string"`

	HmmT int64 `json:"hmmT,string"`
	HmmS int64 `json:"hmmS,string"`
	HmmM int64 `json:"hmmM,string"`

	EvidencePos int64 `json:"evidencePos,string"`
	EvidenceNeg int64 `json:"evidenceNeg,string"`

	OnTime          int64 `json:"onTime,string"`
	Timeouts        int64 `json:"timeout,string"`
	Anomalies       int64 `json:"anomalies,string"`
	ResourceAnomaly int64 `json:"resourceAnomaly,string"`
	Correct         int64 `json:"correct,string"`
	Complaints      int64 `json:"complaints,string"`

	MissedVotes              int64 `json:"missedVotes,string"`
	DoubleSigns              int64 `json:"doubleSigns,string"`
	BlockParticipationPermil int64 `json:"blockParticipationPermil,string"`

	// PendingProposalID is set while a governance proposal about this edge is open.
	PendingProposalID string `json:"pendingProposalId"`
	UpdatedAt         int64  `json:"updatedAt,string"`
}
