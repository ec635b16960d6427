package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails, which handlers ignore
	// in their deferred call after a successful Commit.
	Rollback(ctx context.Context) error

	// Repositories below are bound to the transaction started by Begin.
	ProductRepository() ProductRepository
	ClosingPeriodRepository() ClosingPeriodRepository
	OrderRepository() OrderRepository
	FeatureRepository() FeatureRepository
}
