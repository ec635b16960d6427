// Package commands contains business operations that modify system state.
// Every handler follows the same sequence: caller check, command validation, one unit of
// work (Begin, deferred Rollback, Commit) around the repository calls.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	ClosingPeriodRepoFactory interface {
		ClosingPeriodRepository() ports.ClosingPeriodRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	FeatureRepoFactory interface {
		FeatureRepository() ports.FeatureRepository
	}

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// ClosingPeriodUoW manages transactions for closing period operations.
	ClosingPeriodUoW interface {
		TxManager
		ClosingPeriodRepoFactory
	}

	ClosingPeriodUoWFactory interface {
		Create() ClosingPeriodUoW
	}

	// FeatureUoW manages transactions for feature toggles.
	FeatureUoW interface {
		TxManager
		FeatureRepoFactory
	}

	FeatureUoWFactory interface {
		Create() FeatureUoW
	}

	// OrderUoW manages transactions for order operations. Orders are checked against the
	// catalog and the closing periods read in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   activeProducts, err := uow.ProductRepository().GetAllByStatus(ctx, product.Active)
	//   closingPeriods, err := uow.ClosingPeriodRepository().GetAll(ctx)
	//   // ... build or update the order
	//   id, err := uow.OrderRepository().Save(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		ClosingPeriodRepoFactory
		OrderRepoFactory
		FeatureRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
