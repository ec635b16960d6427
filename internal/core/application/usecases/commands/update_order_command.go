package commands

import (
	"errors"
	"slices"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the details of an existing order. The client contact is not
// part of it and is kept.
//
// Example:
//
//	cmd, err := NewUpdateOrderCommand(orderID, order.Details{
//	    Type:         order.Pickup,
//	    Products:     []order.ProductLine{{ProductID: 42, Quantity: 3}},
//	    DeliveryDate: pickupDate,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order update: %w", err)
//	}
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("failed to update order %d: %w", orderID, err)
//	}
type UpdateOrderCommand struct {
	orderID kernel.OrderID
	details order.Details

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace the details of an order.
// Returns a ValueIsInvalid error when orderID is not positive.
func NewUpdateOrderCommand(orderID kernel.OrderID, details order.Details) (UpdateOrderCommand, error) {
	if err := validateID("orderId", orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	details.Products = slices.Clone(details.Products)
	return UpdateOrderCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Details returns a copy of the replacement order details.
func (c UpdateOrderCommand) Details() order.Details {
	d := c.details
	d.Products = slices.Clone(c.details.Products)
	return d
}
