package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Save inserts the order when its id is zero and overwrites the stored order otherwise.
	// Product lines are replaced as a whole. Returns the id of the stored order.
	Save(ctx context.Context, aggregate *order.Order) (kernel.OrderID, error)

	// Get returns *errs.ObjectNotFoundError when no order has this id.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll returns every order with its product lines.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
