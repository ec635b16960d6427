package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

// ErrArchiveProductCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrArchiveProductCommandIsNotConstructed = errors.New(
	"ArchiveProductCommand must be created via NewArchiveProductCommand constructor",
)

// ArchiveProductCommand withdraws a product from the catalog.
// Archived products stay readable and keep existing orders valid, but cannot be ordered.
//
// Example:
//
//	cmd, err := NewArchiveProductCommand(42)
//	if err != nil {
//	    return fmt.Errorf("invalid product id: %w", err)
//	}
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("failed to archive product: %w", err)
//	}
type ArchiveProductCommand struct {
	productID kernel.ProductID

	guard guard.ConstructorGuard
}

// NewArchiveProductCommand creates a command to archive a product.
// Returns a ValueIsInvalid error when productID is not positive.
func NewArchiveProductCommand(productID kernel.ProductID) (ArchiveProductCommand, error) {
	if err := validateID("productId", productID); err != nil {
		return ArchiveProductCommand{}, err
	}

	return ArchiveProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveProductCommandIsNotConstructed if validation fails.
func (c ArchiveProductCommand) Validate() error {
	return c.guard.Validate(ErrArchiveProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to archive.
func (c ArchiveProductCommand) ProductID() kernel.ProductID {
	return c.productID
}
