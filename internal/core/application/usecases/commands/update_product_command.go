package commands

import (
	"errors"
	"slices"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrUpdateProductCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the editable details of an existing product.
// The status is not editable here; see ArchiveProductCommand.
//
// Example:
//
//	cmd, err := NewUpdateProductCommand(42, "Croissant", "Now with more butter",
//	    decimal.RequireFromString("3.75"), []string{"gluten", "milk"})
//	if err != nil {
//	    return fmt.Errorf("invalid product update: %w", err)
//	}
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("failed to update product: %w", err)
//	}
type UpdateProductCommand struct {
	productID   kernel.ProductID
	name        string
	description string
	price       decimal.Decimal
	allergens   []string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a product.
// Returns a ValueIsInvalid error when productID is not positive. The allergen slice is copied.
func NewUpdateProductCommand(
	productID kernel.ProductID,
	name string,
	description string,
	price decimal.Decimal,
	allergens []string,
) (UpdateProductCommand, error) {
	if err := validateID("productId", productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		price:       price,
		allergens:   slices.Clone(allergens),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProductCommandIsNotConstructed if validation fails.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.ProductID {
	return c.productID
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Allergens returns a copy of the new allergen list.
func (c UpdateProductCommand) Allergens() []string {
	return slices.Clone(c.allergens)
}
