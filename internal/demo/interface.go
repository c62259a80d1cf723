// Package demo builds the deterministic demo dataset: actor addresses, the
// seed job queued through river and the seeder that replays tasks against the
// ledger and the audit tables.
package demo

import (
	"context"

	"tb3/pkg/domain"
)

//go:generate mockgen -package mockdemo -source=interface.go -destination=mock/mockdemo.go *
type Service interface {
	// Enqueue validates req and queues a seed run.
	Enqueue(ctx context.Context, req domain.DemoSeedRequest) (*domain.DemoSeedResult, error)
	// Status reports the last seed run and what is currently on the ledger.
	Status(ctx context.Context) (*domain.DemoStatus, error)
}

// Seeder replaces the ledger and audit data with a generated dataset.
type Seeder interface {
	Seed(ctx context.Context, req domain.DemoSeedRequest) error
}
