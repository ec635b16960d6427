package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Type selects how an order is fulfilled and therefore which scheduling date it carries.
type Type string

const (
	Pickup      Type = "PICKUP"
	Delivery    Type = "DELIVERY"
	Reservation Type = "RESERVATION"
)

// Validate rejects any value other than the three order types.
func (t Type) Validate() error {
	switch t {
	case Pickup, Delivery, Reservation:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

func (t Type) String() string {
	return string(t)
}

// dateLabel is the human name of the scheduling date used in validation messages.
func (t Type) dateLabel() string {
	switch t {
	case Pickup:
		return "pick up date"
	case Delivery:
		return "delivery date"
	case Reservation:
		return "reservation date"
	default:
		return "date"
	}
}
