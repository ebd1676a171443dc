// Package postgres provides the GORM-based unit of work. A unit of work
// spans one lifecycle transition: the locked order read, the status write,
// the ledger inserts, the statistics accumulation, and the snapshot upsert
// commit or roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.StatsRepository().SaveDaily(ctx, row); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create call returns a fresh instance; concurrent operations must not
// share one. Repositories returned before Begin run on the base connection.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"deliverylink/internal/adapters/out/postgres/orderrepo"
	"deliverylink/internal/adapters/out/postgres/otprepo"
	"deliverylink/internal/adapters/out/postgres/statsrepo"
	"deliverylink/internal/adapters/out/postgres/trackingrepo"
	"deliverylink/internal/core/ports"
)

// GormUnitOfWorkFactory creates unit of work instances over one shared GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the order,
// tracking, delivery code, and statistics repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the active
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// TrackingRepository returns a tracking repository bound to the active
// transaction.
func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

// DeliveryCodeRepository returns a delivery code repository bound to the
// active transaction.
func (uow *GormUnitOfWork) DeliveryCodeRepository() ports.DeliveryCodeRepository {
	return otprepo.NewGormDeliveryCodeRepository(uow.conn())
}

// StatsRepository returns a statistics repository bound to the active
// transaction.
func (uow *GormUnitOfWork) StatsRepository() ports.StatsRepository {
	return statsrepo.NewGormStatsRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
