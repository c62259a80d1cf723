package audit

import (
	"context"

	"tb3/pkg/domain"
)

//go:generate mockgen -package mockaudit -source=interface.go -destination=mock/mockaudit.go *
type Auditor interface {
	// TaskLogs compares the ledger's log summaries of a task with the detail
	// rows stored in the database.
	TaskLogs(ctx context.Context, taskID string) (*domain.AuditReport, error)
}

// LogReader is the read side of the ledger the auditor needs.
type LogReader interface {
	LogsByTask(taskID string) ([]domain.LogSummary, error)
	Task(id string) (domain.Task, error)
}
