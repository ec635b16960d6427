package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrder classifies every rejected order.
	ErrInvalidOrder = errors.New("invalid order")

	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// InvalidOrderError names the first rule an order broke.
type InvalidOrderError struct {
	Message string
}

func newInvalidOrderError(format string, args ...any) *InvalidOrderError {
	return &InvalidOrderError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidOrderError) Error() string {
	return e.Message
}

func (e *InvalidOrderError) Unwrap() error {
	return ErrInvalidOrder
}
