package domain

import "time"

// Account is a named ledger identity known to the backend.
type Account struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Address string `json:"address"`
}

// Health describes the liveness of the backend and its ledger.
type Health struct {
	Status  string    `json:"status"`
	ChainID string    `json:"chainId"`
	Height  int64     `json:"height,string"`
	Time    time.Time `json:"time"`
}

// AuditReport compares the ledger's log summaries of a task with the detail
// rows stored in the database.
type AuditReport struct {
	TaskID  string       `json:"task_id"`
	Items   []AuditItem  `json:"items"`
	Summary AuditSummary `json:"summary"`
	Result  *AuditResult `json:"result"`
}

// AuditResult compares the ledger's result hash of a task with the stored
// result. DB is nil when the database has no result row.
type AuditResult struct {
	ChainResultHash string      `json:"chainResultHash"`
	DBResultHash    string      `json:"dbResultHash"`
	Match           bool        `json:"match"`
	Verified        bool        `json:"verified"`
	DB              *TaskResult `json:"db"`
}

// AuditItem is one compared row. Chain is nil for orphan database rows and DB
// is nil when the database has no row for a ledger log.
type AuditItem struct {
	Stage        Stage       `json:"stage"`
	Ts           int64       `json:"ts,string"`
	ChainLogHash string      `json:"chainLogHash"`
	DBLogHash    string      `json:"dbLogHash"`
	Match        bool        `json:"match"`
	TxHash       string      `json:"txHash"`
	Height       int64       `json:"height,string"`
	Chain        *LogSummary `json:"chain"`
	DB           *LogDetail  `json:"db"`
}

// AuditSummary counts the outcome of an audit.
type AuditSummary struct {
	ChainRows  int `json:"chain_rows"`
	Matches    int `json:"matches"`
	Mismatches int `json:"mismatches"`
	MissingDB  int `json:"missing_db"`
	Orphans    int `json:"orphans"`
}

// DemoSeedRequest configures a deterministic demo dataset.
type DemoSeedRequest struct {
	Seed           int64 `json:"seed"`
	TasksPerRegion int   `json:"tasks_per_region"`
	DaysSpan       int   `json:"days_span"`
	BadEdgeMode    bool  `json:"bad_edge_mode"`
}

// DefaultDemoSeedRequest returns the request used when a caller omits fields.
func DefaultDemoSeedRequest() DemoSeedRequest {
	return DemoSeedRequest{
		Seed:           42,
		TasksPerRegion: 15,
		DaysSpan:       7,
		BadEdgeMode:    true,
	}
}

// DemoSeedResult is returned when a seed run is requested.
type DemoSeedResult struct {
	// Queued is false when an identical seed run is already pending.
	Queued  bool            `json:"queued"`
	Request DemoSeedRequest `json:"request"`
}

// DemoStatus reports the state of the demo dataset.
type DemoStatus struct {
	Running    bool       `json:"running"`
	Seeded     bool       `json:"seeded"`
	Seed       int64      `json:"seed"`
	LastSeedAt *time.Time `json:"lastSeedAt,omitempty"`
	LastError  string     `json:"lastError,omitempty"`
	Edges      int        `json:"edges"`
	Tasks      int        `json:"tasks"`
	Logs       int        `json:"logs"`
	Proposals  int        `json:"proposals"`
	Height     int64      `json:"height,string"`
}
