// Package storage defines the persistence the tb3 backend keeps next to the
// ledger: the full log detail rows and task results the ledger only stores
// hashes of, and the river job queue. Writes that belong together go through
// WithTx so that a task's rows land in the database all at once or not at all.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"errors"

	"tb3/pkg/domain"
)

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

// AuditStorage persists the detail rows the ledger only keeps hashes of.
type AuditStorage interface {
	// StoreLogDetails inserts log detail rows. Rows whose log hash is already
	// stored are skipped.
	StoreLogDetails(ctx context.Context, details ...domain.LogDetail) error
	// LogDetailsByTask returns the detail rows of a task ordered by ts, then stage.
	LogDetailsByTask(ctx context.Context, taskID string) ([]domain.LogDetail, error)
	// UpsertTaskResult inserts or replaces the result record of a task.
	UpsertTaskResult(ctx context.Context, result domain.TaskResult) error
	// TaskResultByTask returns the result record of a task, or nil when none is stored.
	TaskResultByTask(ctx context.Context, taskID string) (*domain.TaskResult, error)
	// PurgeAuditData removes every log detail and task result row.
	PurgeAuditData(ctx context.Context) error
}

// AllStorage is what a caller can do both inside and outside a transaction.
type AllStorage interface {
	AuditStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. It is unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle the backend is wired with.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise. The error of cb is returned as is.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
