package http

import (
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"
)

func toProductResponse(p queries.GetActiveProductsQueryResponse) servers.Product {
	allergens := p.Allergens
	if allergens == nil {
		allergens = make([]string, 0)
	}

	return servers.Product{
		Id:          int64(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Allergens:   allergens,
	}
}

func toOrderResponse(o queries.GetOrdersQueryResponse) servers.Order {
	lines := make([]servers.ProductLine, len(o.Products))
	for i, line := range o.Products {
		lines[i] = servers.ProductLine{ProductId: int64(line.ProductID), Quantity: line.Quantity}
	}

	return servers.Order{
		Id:                 int64(o.ID),
		ClientName:         o.ClientName,
		ClientPhoneNumber:  o.ClientPhoneNumber,
		ClientEmailAddress: o.ClientEmailAddress,
		Products:           lines,
		Type:               servers.OrderType(o.Type),
		PickUpDate:         optionalDate(o.PickUpDate),
		DeliveryDate:       optionalDate(o.DeliveryDate),
		DeliveryAddress:    o.DeliveryAddress,
		ReservationDate:    optionalDate(o.ReservationDate),
		Note:               o.Note,
		CreatedAt:          o.CreatedAt.UTC(),
	}
}

func toClient(body servers.NewOrder) order.Client {
	return order.Client{
		Name:         body.ClientName,
		PhoneNumber:  body.ClientPhoneNumber,
		EmailAddress: body.ClientEmailAddress,
	}
}

func toOrderDetails(body servers.OrderDetails) (order.Details, error) {
	details := order.Details{
		Products:        make([]order.ProductLine, len(body.Products)),
		Type:            order.Type(body.Type),
		DeliveryAddress: deref(body.DeliveryAddress),
		Note:            deref(body.Note),
	}
	for i, line := range body.Products {
		details.Products[i] = order.ProductLine{ProductID: kernel.ProductID(line.ProductId), Quantity: line.Quantity}
	}

	var err error
	if details.PickUpDate, err = parseDate("pickUpDate", body.PickUpDate); err != nil {
		return order.Details{}, err
	}
	if details.DeliveryDate, err = parseDate("deliveryDate", body.DeliveryDate); err != nil {
		return order.Details{}, err
	}
	if details.ReservationDate, err = parseDate("reservationDate", body.ReservationDate); err != nil {
		return order.Details{}, err
	}

	return details, nil
}

func parseDate(paramName string, value *string) (time.Time, error) {
	if value == nil {
		return time.Time{}, nil
	}
	t, err := kernel.ParseCalendarDate(*value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return t, nil
}

func optionalDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := kernel.FormatCalendarDate(t)
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefSlice(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}
