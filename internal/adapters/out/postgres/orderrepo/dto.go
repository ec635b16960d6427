// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row of "orders" plus one row of "order_lines" per product line.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Scheduling dates not used by the order type are stored as NULL.
type OrderDTO struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement"`
	ClientName         string     `gorm:"not null"`
	ClientPhoneNumber  string     `gorm:"not null"`
	ClientEmailAddress string     `gorm:"not null"`
	Type               string     `gorm:"type:varchar(16);not null;index"`
	PickUpDate         *time.Time `gorm:"type:date"`
	DeliveryDate       *time.Time `gorm:"type:date"`
	DeliveryAddress    string     `gorm:"not null;default:''"`
	ReservationDate    *time.Time `gorm:"type:date"`
	Note               string     `gorm:"not null;default:''"`
	CreatedAt          time.Time  `gorm:"not null"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one product line of an order, kept in insertion order by its id.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null"`
	Quantity  int   `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	client := o.Client()
	dto := OrderDTO{
		ID:                 int64(o.ID()),
		ClientName:         client.Name,
		ClientPhoneNumber:  client.PhoneNumber,
		ClientEmailAddress: client.EmailAddress,
		Type:               o.Type().String(),
		PickUpDate:         nullableDate(o.PickUpDate()),
		DeliveryDate:       nullableDate(o.DeliveryDate()),
		DeliveryAddress:    o.DeliveryAddress(),
		ReservationDate:    nullableDate(o.ReservationDate()),
		Note:               o.Note(),
		CreatedAt:          o.CreatedAt().UTC(),
	}
	dto.Lines = linesFromDomain(dto.ID, o.Products())
	return dto
}

func linesFromDomain(orderID int64, products []order.ProductLine) []OrderLineDTO {
	lines := make([]OrderLineDTO, 0, len(products))
	for _, p := range products {
		lines = append(lines, OrderLineDTO{
			OrderID:   orderID,
			ProductID: int64(p.ProductID),
			Quantity:  p.Quantity,
		})
	}
	return lines
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	products := make([]order.ProductLine, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		products = append(products, order.ProductLine{
			ProductID: kernel.ProductID(line.ProductID),
			Quantity:  line.Quantity,
		})
	}

	return order.RestoreOrder(
		kernel.OrderID(dto.ID),
		order.Client{
			Name:         dto.ClientName,
			PhoneNumber:  dto.ClientPhoneNumber,
			EmailAddress: dto.ClientEmailAddress,
		},
		order.Details{
			Products:        products,
			Type:            order.Type(dto.Type),
			PickUpDate:      calendarDate(dto.PickUpDate),
			DeliveryDate:    calendarDate(dto.DeliveryDate),
			DeliveryAddress: dto.DeliveryAddress,
			ReservationDate: calendarDate(dto.ReservationDate),
			Note:            dto.Note,
		},
		dto.CreatedAt,
	)
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := kernel.AtNoonUTC(t)
	return &d
}

func calendarDate(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return kernel.AtNoonUTC(*t)
}
