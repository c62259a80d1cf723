package domain

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusCreated  TaskStatus = "CREATED"
	TaskStatusAssigned TaskStatus = "ASSIGNED"
	TaskStatusRunning  TaskStatus = "RUNNING"
	TaskStatusFinished TaskStatus = "FINISHED"
	TaskStatusFailed   TaskStatus = "FAILED"
)

// Stage names the step of task execution a log summary was produced at.
type Stage string

const (
	StageRecv   Stage = "RECV"
	StageExec   Stage = "EXEC"
	StageResult Stage = "RESULT"
	// StageOrphan marks audit rows stored in the database without a ledger counterpart.
	StageOrphan Stage = "ORPHAN"
)

// Task is a unit of work a vehicle offloads to an edge of its region.
type Task struct {
	TaskID         string     `json:"taskId"`
	VehicleAddr    string     `json:"vehicleAddr"`
	ChosenEdgeAddr string     `json:"chosenEdgeAddr"`
	Region         string     `json:"region"`
	Status         TaskStatus `json:"status"`
	Profile        string     `json:"profile"`
	PayloadHash    string     `json:"payloadHash"`
	ResultHash     string     `json:"resultHash"`
	// LogHashes lists the hashes of every log summary submitted for the task, in order.
	LogHashes []string `json:"logHashes"`
	CreatedTs int64    `json:"createdTs,string"`
	UpdatedTs int64    `json:"updatedTs,string"`
}

// LogSummary is the on-ledger digest of one execution stage of a task.
type LogSummary struct {
	Stage      Stage  `json:"stage"`
	TaskID     string `json:"taskId"`
	EdgeAddr   string `json:"edgeAddr"`
	LogHash    string `json:"logHash"`
	ResultHash string `json:"resultHash"`
	CPU        int64  `json:"cpu,string"`
	Mem        int64  `json:"mem,string"`
	Latency    int64  `json:"latency,string"`
	Net        int64  `json:"net,string"`
	Signer     string `json:"signer"`
	TxHash     string `json:"txHash"`
	Height     int64  `json:"height,string"`
	Ts         int64  `json:"ts,string"`
}

// LogDetail is the full off-ledger record of a stage log. DetailJSON holds the
// canonical JSON the ledger's LogHash was computed from.
type LogDetail struct {
	TaskID     string `json:"task_id"`
	EdgeAddr   string `json:"edge_addr"`
	Stage      Stage  `json:"stage"`
	Ts         int64  `json:"ts"`
	CPUMs      int64  `json:"cpu_ms"`
	MemMBPeak  int64  `json:"mem_mb_peak"`
	NetKB      int64  `json:"net_kb"`
	LatencyMs  int64  `json:"latency_ms"`
	ResultHash string `json:"result_hash,omitempty"`
	LogHash    string `json:"log_hash"`
	DetailJSON string `json:"detail_json"`
	TxHash     string `json:"tx_hash,omitempty"`
	Height     int64  `json:"height,omitempty"`
	MsgType    string `json:"msg_type,omitempty"`
	Signer     string `json:"signer,omitempty"`
}

// TaskResult is the off-ledger result record of a finished task.
type TaskResult struct {
	TaskID         string `json:"task_id"`
	ChosenEdgeAddr string `json:"chosen_edge_addr"`
	ResultJSON     string `json:"result_json"`
	ResultHash     string `json:"result_hash"`
	ResultSig      string `json:"result_sig,omitempty"`
	Verified       bool   `json:"verified"`
	TxHash         string `json:"tx_hash,omitempty"`
	Height         int64  `json:"height,omitempty"`
	Signer         string `json:"signer,omitempty"`
}
