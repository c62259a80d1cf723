// Package tb3 describes the REST surface of the tb3 backend: the table of named
// operations with their HTTP method and path, the JSON envelopes exchanged on
// the wire and the Client abstraction the dashboard and CLI are written against.
package tb3

import (
	"context"

	"tb3/pkg/domain"
)

// Client is the abstraction over the tb3 REST surface. Every method issues
// exactly one request to the endpoint of the same name; failures are returned
// as they come from the transport, without retries.
//
//go:generate mockgen -package mocktb3 -source=interface.go -destination=mock/mocktb3.go *
type Client interface {
	// Health reports backend liveness and the current ledger height.
	Health(ctx context.Context) (*domain.Health, error)
	// Accounts lists the ledger identities configured on the backend.
	Accounts(ctx context.Context) ([]domain.Account, error)
	Edges(ctx context.Context) ([]domain.Edge, error)
	Edge(ctx context.Context, addr string) (*domain.Edge, error)
	Tasks(ctx context.Context) ([]domain.Task, error)
	Task(ctx context.Context, taskID string) (*domain.Task, error)
	LogsByTask(ctx context.Context, taskID string) ([]domain.LogSummary, error)
	LogsAll(ctx context.Context) ([]domain.LogSummary, error)
	// AuditLogs compares the ledger logs of a task with the stored detail rows.
	AuditLogs(ctx context.Context, taskID string) (*domain.AuditReport, error)
	Proposals(ctx context.Context) ([]domain.Proposal, error)
	ApproveProposal(ctx context.Context, id string) (*domain.TxResult, error)
	// RejectProposal sends reason as the "reason" query parameter.
	RejectProposal(ctx context.Context, id, reason string) (*domain.TxResult, error)
	Propagations(ctx context.Context) ([]domain.Propagation, error)
	DemoStatus(ctx context.Context) (*domain.DemoStatus, error)
	DemoSeed(ctx context.Context, req domain.DemoSeedRequest) (*domain.DemoSeedResult, error)
}
