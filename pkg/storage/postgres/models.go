package postgres

import (
	"database/sql"
	"time"

	"tb3/pkg/domain"
)

// PgLogDetail is the row layout of the log_details table.
type PgLogDetail struct {
	ID         int64          `db:"id"          goqu:"skipinsert"`
	TaskID     string         `db:"task_id"`
	EdgeAddr   sql.NullString `db:"edge_addr"`
	Stage      string         `db:"stage"`
	Ts         int64          `db:"ts"`
	CPUMs      int64          `db:"cpu_ms"`
	MemMBPeak  int64          `db:"mem_mb_peak"`
	NetKB      int64          `db:"net_kb"`
	LatencyMs  int64          `db:"latency_ms"`
	ResultHash sql.NullString `db:"result_hash"`
	LogHash    string         `db:"log_hash"`
	DetailJSON string         `db:"detail_json"`
	TxHash     sql.NullString `db:"tx_hash"`
	Height     sql.NullInt64  `db:"height"`
	MsgType    sql.NullString `db:"msg_type"`
	Signer     sql.NullString `db:"signer"`
	CreatedAt  time.Time      `db:"created_at"  goqu:"skipinsert"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n != 0}
}

func (p *PgLogDetail) ToDomain() domain.LogDetail {
	return domain.LogDetail{
		TaskID:     p.TaskID,
		EdgeAddr:   p.EdgeAddr.String,
		Stage:      domain.Stage(p.Stage),
		Ts:         p.Ts,
		CPUMs:      p.CPUMs,
		MemMBPeak:  p.MemMBPeak,
		NetKB:      p.NetKB,
		LatencyMs:  p.LatencyMs,
		ResultHash: p.ResultHash.String,
		LogHash:    p.LogHash,
		DetailJSON: p.DetailJSON,
		TxHash:     p.TxHash.String,
		Height:     p.Height.Int64,
		MsgType:    p.MsgType.String,
		Signer:     p.Signer.String,
	}
}

func (p *PgLogDetail) FromDomain(d domain.LogDetail) {
	*p = PgLogDetail{
		TaskID:     d.TaskID,
		EdgeAddr:   nullString(d.EdgeAddr),
		Stage:      string(d.Stage),
		Ts:         d.Ts,
		CPUMs:      d.CPUMs,
		MemMBPeak:  d.MemMBPeak,
		NetKB:      d.NetKB,
		LatencyMs:  d.LatencyMs,
		ResultHash: nullString(d.ResultHash),
		LogHash:    d.LogHash,
		DetailJSON: d.DetailJSON,
		TxHash:     nullString(d.TxHash),
		Height:     nullInt64(d.Height),
		MsgType:    nullString(d.MsgType),
		Signer:     nullString(d.Signer),
	}
}

// PgTaskResult is the row layout of the task_results table.
type PgTaskResult struct {
	ID             int64          `db:"id"               goqu:"skipinsert"`
	TaskID         string         `db:"task_id"`
	ChosenEdgeAddr string         `db:"chosen_edge_addr"`
	ResultJSON     string         `db:"result_json"`
	ResultHash     string         `db:"result_hash"`
	ResultSig      sql.NullString `db:"result_sig"`
	Verified       bool           `db:"verified"`
	TxHash         sql.NullString `db:"tx_hash"`
	Height         sql.NullInt64  `db:"height"`
	Signer         sql.NullString `db:"signer"`
	CreatedAt      time.Time      `db:"created_at"       goqu:"skipinsert"`
}

func (p *PgTaskResult) ToDomain() *domain.TaskResult {
	return &domain.TaskResult{
		TaskID:         p.TaskID,
		ChosenEdgeAddr: p.ChosenEdgeAddr,
		ResultJSON:     p.ResultJSON,
		ResultHash:     p.ResultHash,
		ResultSig:      p.ResultSig.String,
		Verified:       p.Verified,
		TxHash:         p.TxHash.String,
		Height:         p.Height.Int64,
		Signer:         p.Signer.String,
	}
}

func (p *PgTaskResult) FromDomain(r domain.TaskResult) {
	*p = PgTaskResult{
		TaskID:         r.TaskID,
		ChosenEdgeAddr: r.ChosenEdgeAddr,
		ResultJSON:     r.ResultJSON,
		ResultHash:     r.ResultHash,
		ResultSig:      nullString(r.ResultSig),
		Verified:       r.Verified,
		TxHash:         nullString(r.TxHash),
		Height:         nullInt64(r.Height),
		Signer:         nullString(r.Signer),
	}
}
