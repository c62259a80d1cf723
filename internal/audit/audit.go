package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tb3/pkg/domain"
	"tb3/pkg/hashing"
	"tb3/pkg/logger"
	"tb3/pkg/storage"
)

// auditor is the concrete implementation of the Auditor interface.
type auditor struct {
	chain   LogReader
	storage storage.AuditStorage
}

// TaskLogs walks the ledger logs of taskID in submission order. Each one is
// matched with the database row carrying the same log hash, and the row's hash
// is recomputed from its stored detail JSON. A row whose recomputed hash
// differs from the ledger's is a mismatch, a ledger log with no row is
// counted as missing. Rows the ledger does not know about are appended as
// ORPHAN items. The stored task result is checked against the ledger's result
// hash the same way.
func (a auditor) TaskLogs(ctx context.Context, taskID string) (*domain.AuditReport, error) {
	chainLogs, err := a.chain.LogsByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger logs: %w", err)
	}

	rows, err := a.storage.LogDetailsByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not read log details: %w", err)
	}

	result, err := a.storage.TaskResultByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not read task result: %w", err)
	}

	task, err := a.chain.Task(taskID)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger task: %w", err)
	}

	byHash := make(map[string]*domain.LogDetail, len(rows))
	for i := range rows {
		byHash[rows[i].LogHash] = &rows[i]
	}

	report := &domain.AuditReport{
		TaskID: taskID,
		Items:  make([]domain.AuditItem, 0, len(chainLogs)),
		Result: compareResult(ctx, task, result),
	}
	report.Summary.ChainRows = len(chainLogs)

	seen := make(map[string]struct{}, len(chainLogs))
	for i := range chainLogs {
		c := chainLogs[i]
		seen[c.LogHash] = struct{}{}

		item := domain.AuditItem{
			Stage:        c.Stage,
			Ts:           c.Ts,
			ChainLogHash: c.LogHash,
			TxHash:       c.TxHash,
			Height:       c.Height,
			Chain:        &c,
		}

		row, ok := byHash[c.LogHash]
		if !ok {
			report.Summary.MissingDB++
			report.Items = append(report.Items, item)

			continue
		}

		item.DB = row
		item.DBLogHash = recompute(ctx, row)
		item.Match = item.DBLogHash == c.LogHash
		if item.Match {
			report.Summary.Matches++
		} else {
			report.Summary.Mismatches++
		}
		report.Items = append(report.Items, item)
	}

	for i := range rows {
		row := &rows[i]
		if _, ok := seen[row.LogHash]; ok {
			continue
		}

		report.Summary.Orphans++
		report.Items = append(report.Items, domain.AuditItem{
			Stage:     domain.StageOrphan,
			Ts:        row.Ts,
			DBLogHash: row.LogHash,
			TxHash:    row.TxHash,
			Height:    row.Height,
			DB:        row,
		})
	}

	return report, nil
}

// recompute hashes the stored detail JSON. Undecodable JSON yields an empty
// hash, which never matches.
func recompute(ctx context.Context, row *domain.LogDetail) string {
	h, err := hashing.HashJSONString(row.DetailJSON)
	if err != nil {
		logger.Warn(ctx, "stored log detail is not valid JSON",
			zap.String("taskID", row.TaskID),
			zap.String("logHash", row.LogHash),
			zap.Error(err))

		return ""
	}

	return h
}

// compareResult is nil when neither the ledger nor the database has a result.
func compareResult(ctx context.Context, task domain.Task, stored *domain.TaskResult) *domain.AuditResult {
	if task.ResultHash == "" && stored == nil {
		return nil
	}

	out := &domain.AuditResult{ChainResultHash: task.ResultHash, DB: stored}
	if stored == nil {
		return out
	}

	h, err := hashing.HashJSONString(stored.ResultJSON)
	if err != nil {
		logger.Warn(ctx, "stored task result is not valid JSON",
			zap.String("taskID", stored.TaskID),
			zap.Error(err))
	}
	out.DBResultHash = h
	out.Verified = stored.Verified
	out.Match = h != "" && h == task.ResultHash

	return out
}

// New returns an Auditor reading ledger logs from chain and detail rows from storage.
func New(chain LogReader, storage storage.AuditStorage) Auditor {
	return auditor{
		chain:   chain,
		storage: storage,
	}
}
