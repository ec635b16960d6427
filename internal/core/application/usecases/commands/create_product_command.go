package commands

import (
	"errors"
	"slices"

	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateProductCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds an item to the catalog.
//
// Example:
//
//	cmd := NewCreateProductCommand(
//	    "Croissant",
//	    "Butter croissant",
//	    decimal.RequireFromString("3.50"),
//	    []string{"gluten", "milk"},
//	)
//
//	id, err := handler.Handle(ctx, caller, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
//	fmt.Printf("Product %d is now orderable", id)
type CreateProductCommand struct {
	name        string
	description string
	price       decimal.Decimal
	allergens   []string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product.
// Name, description and price are checked by the product aggregate when the handler runs.
// The allergen slice is copied.
func NewCreateProductCommand(
	name string,
	description string,
	price decimal.Decimal,
	allergens []string,
) CreateProductCommand {
	return CreateProductCommand{
		name:        name,
		description: description,
		price:       price,
		allergens:   slices.Clone(allergens),
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the display name of the product.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-form product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Allergens returns a copy of the declared allergens.
func (c CreateProductCommand) Allergens() []string {
	return slices.Clone(c.allergens)
}
