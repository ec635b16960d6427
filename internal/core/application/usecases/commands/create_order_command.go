package commands

import (
	"errors"
	"slices"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	// ErrCreateOrderCommandIsNotConstructed is returned by Validate for a zero-value command.
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrProductOrderingDisabled is returned to customers while the PRODUCT_ORDERING
	// toggle is off.
	ErrProductOrderingDisabled = errors.New("product ordering is disabled")
)

// CreateOrderCommand places a customer order. Dates are calendar days anchored at noon UTC.
//
// Example:
//
//	cmd := NewCreateOrderCommand(
//	    order.Client{Name: "Jane", PhoneNumber: "514-555-0100", EmailAddress: "jane@example.com"},
//	    order.Details{
//	        Type:            order.Delivery,
//	        Products:        []order.ProductLine{{ProductID: 42, Quantity: 1}},
//	        DeliveryDate:    deliveryDate,
//	        DeliveryAddress: "Laval",
//	    },
//	)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	client  order.Client
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The product lines are copied so later changes by the caller do not reach the command.
// Field level checks run in the order aggregate, so construction itself cannot fail.
func NewCreateOrderCommand(client order.Client, details order.Details) CreateOrderCommand {
	details.Products = slices.Clone(details.Products)
	return CreateOrderCommand{
		client:  client,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Client returns the contact details of the customer placing the order.
func (c CreateOrderCommand) Client() order.Client {
	return c.client
}

// Details returns a copy of the requested order details.
func (c CreateOrderCommand) Details() order.Details {
	d := c.details
	d.Products = slices.Clone(c.details.Products)
	return d
}
