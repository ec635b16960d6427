// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// A unit of work wraps one database transaction and hands out repositories bound to it.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, observer)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	id, err := uow.ProductRepository().Save(ctx, p)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Concurrent saves of the same row follow last write wins
package postgres

import (
	"context"

	"bakery/internal/adapters/out/postgres/closingperiodrepo"
	"bakery/internal/adapters/out/postgres/featurerepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// CommitObserver is told which aggregates were written by a committed unit of work.
type CommitObserver interface {
	AggregatesCommitted(aggregates []any)
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// observer may be nil.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, NewCommittedAggregatesCounter(prometheus.DefaultRegisterer))
func NewGormUnitOfWorkFactory(db *gorm.DB, observer CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

// Create produces a new UnitOfWork instance with its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]any, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates saved
// through its repositories. Tracked aggregates are reported to the observer after a
// successful commit and dropped on rollback.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          CommitObserver
	trackedAggregates []any
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
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

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	if uow.observer != nil && len(uow.trackedAggregates) > 0 {
		uow.observer.AggregatesCommitted(uow.trackedAggregates)
	}
	uow.trackedAggregates = make([]any, 0)
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// ProductRepository returns a product repository bound to the current transaction,
// or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ClosingPeriodRepository() ports.ClosingPeriodRepository {
	return closingperiodrepo.NewGormClosingPeriodRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) FeatureRepository() ports.FeatureRepository {
	return featurerepo.NewGormFeatureRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful save.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
