package order

import (
	"strings"
	"time"

	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
)

// ProductLine is a quantity of one product in an order.
type ProductLine struct {
	ProductID kernel.ProductID
	Quantity  int
}

// Client is the contact recorded when the order is placed. It cannot be changed by an
// update.
type Client struct {
	Name         string
	PhoneNumber  string
	EmailAddress string
}

// Details are the fields a customer or staff member supplies for an order. Zero dates and
// empty strings mean "not provided".
type Details struct {
	Products        []ProductLine
	Type            Type
	PickUpDate      time.Time
	DeliveryDate    time.Time
	DeliveryAddress string
	ReservationDate time.Time
	Note            string
}

// Snapshot is the state an order is checked against: the products that can currently be
// ordered, the known closing periods and the current instant in the business time zone.
type Snapshot struct {
	ActiveProducts []*product.Product
	ClosingPeriods []*closingperiod.ClosingPeriod
	Now            time.Time
}

func (c Client) validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return newInvalidOrderError("client name has to be defined")
	case strings.TrimSpace(c.PhoneNumber) == "":
		return newInvalidOrderError("client phone number has to be defined")
	case strings.TrimSpace(c.EmailAddress) == "":
		return newInvalidOrderError("client email address has to be defined")
	}
	return nil
}

func (c Client) normalized() Client {
	return Client{
		Name:         strings.TrimSpace(c.Name),
		PhoneNumber:  strings.TrimSpace(c.PhoneNumber),
		EmailAddress: strings.TrimSpace(c.EmailAddress),
	}
}

// scheduledDate is the date matching the declared type.
func (d Details) scheduledDate() time.Time {
	switch d.Type {
	case Pickup:
		return d.PickUpDate
	case Delivery:
		return d.DeliveryDate
	case Reservation:
		return d.ReservationDate
	default:
		return time.Time{}
	}
}

// validate runs the order rules in order and stops at the first violation.
func (d Details) validate(s Snapshot) error {
	checks := []func() error{
		d.validateType,
		func() error { return d.validateProductsAreActive(s.ActiveProducts) },
		d.validateQuantities,
		func() error { return d.validateScheduledDate(s.ClosingPeriods, s.Now) },
		d.validateDeliveryAddress,
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (d Details) validateType() error {
	if err := d.Type.Validate(); err != nil {
		return newInvalidOrderError("order type %q is not valid", string(d.Type))
	}

	foreign := map[string]bool{
		"pick up date":     d.Type != Pickup && !d.PickUpDate.IsZero(),
		"delivery date":    d.Type != Delivery && !d.DeliveryDate.IsZero(),
		"delivery address": d.Type != Delivery && strings.TrimSpace(d.DeliveryAddress) != "",
		"reservation date": d.Type != Reservation && !d.ReservationDate.IsZero(),
	}
	for _, field := range []string{"pick up date", "delivery date", "delivery address", "reservation date"} {
		if foreign[field] {
			return newInvalidOrderError("%s order cannot have a %s", d.Type, field)
		}
	}
	return nil
}

func (d Details) validateProductsAreActive(activeProducts []*product.Product) error {
	active := make(map[kernel.ProductID]struct{}, len(activeProducts))
	for _, p := range activeProducts {
		if p != nil && p.IsActive() {
			active[p.ID()] = struct{}{}
		}
	}

	for _, line := range d.Products {
		if _, ok := active[line.ProductID]; !ok {
			return newInvalidOrderError("product %d is not an active product", line.ProductID)
		}
	}
	return nil
}

func (d Details) validateQuantities() error {
	if len(d.Products) == 0 {
		return newInvalidOrderError("order has to contain at least one product")
	}
	for _, line := range d.Products {
		if line.Quantity <= 0 {
			return newInvalidOrderError(
				"quantity %d of product %d has to be greater than 0", line.Quantity, line.ProductID,
			)
		}
	}
	return nil
}

func (d Details) validateScheduledDate(closingPeriods []*closingperiod.ClosingPeriod, now time.Time) error {
	label := d.Type.dateLabel()
	date := d.scheduledDate()

	if date.IsZero() {
		return newInvalidOrderError("%s has to be defined", label)
	}
	if kernel.IsBeforeIgnoringTime(date, now) {
		return newInvalidOrderError("%s %s has to be in the future", label, kernel.FormatCalendarDate(date))
	}
	for _, cp := range closingPeriods {
		if cp != nil && cp.Contains(date) {
			return newInvalidOrderError(
				"%s %s has to be outside closing period from %s to %s",
				label,
				kernel.FormatCalendarDate(date),
				kernel.FormatCalendarDate(cp.StartDate()),
				kernel.FormatCalendarDate(cp.EndDate()),
			)
		}
	}
	return nil
}

func (d Details) validateDeliveryAddress() error {
	if d.Type == Delivery && strings.TrimSpace(d.DeliveryAddress) == "" {
		return newInvalidOrderError("delivery address has to be defined")
	}
	return nil
}
