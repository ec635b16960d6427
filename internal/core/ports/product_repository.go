// Package ports defines the repository contracts the application layer depends on.
// Adapters in internal/adapters/out implement them.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog.
type ProductRepository interface {
	// Save inserts the product when its id is zero and overwrites the stored product otherwise.
	Save(ctx context.Context, aggregate *product.Product) (kernel.ProductID, error)

	// Get returns *errs.ObjectNotFoundError when no product has this id.
	Get(ctx context.Context, id kernel.ProductID) (*product.Product, error)

	// GetAllByStatus returns the products in the given status ordered by id.
	GetAllByStatus(ctx context.Context, status product.Status) ([]*product.Product, error)
}
