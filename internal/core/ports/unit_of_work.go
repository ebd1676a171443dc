package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// active transaction. Client code must explicitly manage transaction
// lifecycle.
//
// Every lifecycle transition runs inside one UnitOfWork: the locked order
// read, the status write, the ledger inserts, the statistics accumulation,
// and the snapshot recompute either all commit or all roll back.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// TrackingRepository returns a TrackingRepository bound to the current transaction.
	TrackingRepository() TrackingRepository

	// DeliveryCodeRepository returns a DeliveryCodeRepository bound to the current transaction.
	DeliveryCodeRepository() DeliveryCodeRepository

	// StatsRepository returns a StatsRepository bound to the current transaction.
	StatsRepository() StatsRepository
}
