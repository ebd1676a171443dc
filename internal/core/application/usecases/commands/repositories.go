// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliverylink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// CodeRepoFactory provides access to the delivery code repository within a transaction.
	CodeRepoFactory interface {
		DeliveryCodeRepository() ports.DeliveryCodeRepository
	}

	// StatsRepoFactory provides access to the statistics repository within a transaction.
	StatsRepoFactory interface {
		StatsRepository() ports.StatsRepository
	}

	// TrackingUoW manages transactions for operations that only read an order
	// and append to its tracking ledger (issue reports, location pings,
	// declines). These never touch statistics.
	TrackingUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// LifecycleUoW manages transactions for full lifecycle transitions.
	// A transition writes the order, its ledger, and all three statistics
	// rollups in one atomic unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   statsRepo := uow.StatsRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
		CodeRepoFactory
		StatsRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}
)
