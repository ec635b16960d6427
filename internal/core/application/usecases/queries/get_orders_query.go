package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists every order with its product lines. Staff only.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one order as shown to staff. Dates that do not apply to the
// order type are zero.
type GetOrdersQueryResponse struct {
	ID                 kernel.OrderID
	ClientName         string
	ClientPhoneNumber  string
	ClientEmailAddress string
	Products           []order.ProductLine
	Type               order.Type
	PickUpDate         time.Time
	DeliveryDate       time.Time
	DeliveryAddress    string
	ReservationDate    time.Time
	Note               string
	CreatedAt          time.Time
}
