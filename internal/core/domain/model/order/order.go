package order

import (
	"slices"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// Order is the aggregate root for a customer order. It records who ordered, which
// products and how many, and when and how the order is handed over.
//
// Order follows these invariants:
//   - client name, phone number and email address are set at creation and never change
//   - it holds at least one product line, each with a positive quantity
//   - exactly the scheduling fields of its type are populated
//
// Use cases never mutate a persisted order directly: they Copy it, call UpdateWith on the
// copy and save the copy.
type Order struct {
	// id is assigned by the repository on first save (zero until then)
	id kernel.OrderID

	// client is the contact of the customer, normalized at creation
	client Client

	// products are the ordered lines, in the order they were submitted
	products []ProductLine

	// orderType selects which scheduling fields below are populated
	orderType Type

	// pickUpDate is set for Pickup orders only
	pickUpDate time.Time

	// deliveryDate and deliveryAddress are set for Delivery orders only
	deliveryDate    time.Time
	deliveryAddress string

	// reservationDate is set for Reservation orders only
	reservationDate time.Time

	// note is free text from the customer, trimmed
	note string

	// createdAt is the business clock instant at which the order was placed
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder validates a new order against the snapshot and returns it with a zero id.
//
// Rules, checked in order, the first violation is returned as *InvalidOrderError:
//  0. client name, phone number and email address are defined
//  1. the type is valid and no scheduling field of another type is set
//  2. every product line references an active product of the snapshot
//  3. there is at least one line and every quantity is positive
//  4. the scheduling date is defined, not on a day before now, and outside every closing period
//  5. a delivery has an address
//
// Parameters:
//   - client: contact details of the customer placing the order
//   - details: products, type and scheduling fields requested by the customer
//   - snapshot: active products, closing periods and the current instant, read in the
//     same transaction as the save
//
// Returns:
//   - *Order: the new order, ready to be saved
//   - error: an *InvalidOrderError matching ErrInvalidOrder
//
// Example:
//
//	o, err := order.NewOrder(client, order.Details{
//	    Type:            order.Delivery,
//	    Products:        []order.ProductLine{{ProductID: 42, Quantity: 1}},
//	    DeliveryDate:    deliveryDate,
//	    DeliveryAddress: "Laval",
//	}, snapshot)
func NewOrder(client Client, details Details, snapshot Snapshot) (*Order, error) {
	if err := client.validate(); err != nil {
		return nil, err
	}
	if err := details.validate(snapshot); err != nil {
		return nil, err
	}

	o := &Order{
		client:        client.normalized(),
		createdAt:     snapshot.Now,
		isConstructed: true,
	}
	o.assign(details)
	return o, nil
}

// RestoreOrder rebuilds a persisted order. Only the type and its scheduling fields are
// checked. Products and dates are not checked against the current catalog or calendar:
// a stored order stays readable even when its products were archived or its date has
// passed.
//
// Example:
//
//	o, err := order.RestoreOrder(row.ID, client, details, row.CreatedAt)
//	if err != nil {
//	    return nil, fmt.Errorf("restore order %d: %w", row.ID, err)
//	}
func RestoreOrder(id kernel.OrderID, client Client, details Details, createdAt time.Time) (*Order, error) {
	if err := details.validateType(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		client:        client,
		createdAt:     createdAt,
		isConstructed: true,
	}
	o.assign(details)
	return o, nil
}

// Copy clones existing, keeping its id, client and creation time.
// The product lines are copied, so changes to the clone never reach existing.
// Returns nil for a nil order.
func Copy(existing *Order) *Order {
	if existing == nil {
		return nil
	}

	clone := *existing
	clone.products = slices.Clone(existing.products)
	return &clone
}

// UpdateWith replaces the details of the order after checking them against the current
// snapshot with the same rules as NewOrder, client checks aside. On failure the order is
// left unchanged.
//
// Example:
//
//	updated := order.Copy(existing)
//	if err := updated.UpdateWith(details, snapshot); err != nil {
//	    return err // existing and updated are both untouched
//	}
func (o *Order) UpdateWith(details Details, snapshot Snapshot) error {
	if err := details.validate(snapshot); err != nil {
		return err
	}

	o.assign(details)
	return nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
// Returns ErrOrderIsNotConstructed for a nil or zero-value order.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the repository id, or zero for an order that was never saved.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Client returns the customer contact.
func (o *Order) Client() Client {
	return o.client
}

// Products returns a copy of the product lines.
func (o *Order) Products() []ProductLine {
	return slices.Clone(o.products)
}

// Type returns how the order is handed over.
func (o *Order) Type() Type {
	return o.orderType
}

// PickUpDate returns the pick up day, or the zero time when the order is not a Pickup.
func (o *Order) PickUpDate() time.Time {
	return o.pickUpDate
}

// DeliveryDate returns the delivery day, or the zero time when the order is not a Delivery.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// DeliveryAddress returns the trimmed address of a Delivery order.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// ReservationDate returns the reserved day, or the zero time when the order is not a Reservation.
func (o *Order) ReservationDate() time.Time {
	return o.reservationDate
}

// Note returns the customer note, possibly empty.
func (o *Order) Note() string {
	return o.note
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ScheduledDate returns the pick up, delivery or reservation date depending on the type.
func (o *Order) ScheduledDate() time.Time {
	return o.Details().scheduledDate()
}

// Details returns the current fields of the order in the shape accepted by UpdateWith.
func (o *Order) Details() Details {
	return Details{
		Products:        o.Products(),
		Type:            o.orderType,
		PickUpDate:      o.pickUpDate,
		DeliveryDate:    o.deliveryDate,
		DeliveryAddress: o.deliveryAddress,
		ReservationDate: o.reservationDate,
		Note:            o.note,
	}
}

// assign copies the fields of d into the order, trimming the free text fields.
func (o *Order) assign(d Details) {
	o.products = slices.Clone(d.Products)
	o.orderType = d.Type
	o.pickUpDate = d.PickUpDate
	o.deliveryDate = d.DeliveryDate
	o.deliveryAddress = strings.TrimSpace(d.DeliveryAddress)
	o.reservationDate = d.ReservationDate
	o.note = strings.TrimSpace(d.Note)
}
