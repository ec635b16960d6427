// Package servers holds the HTTP contract of the bakery API: the request and response
// bodies of docs/openapi.yaml and the echo routing of its operations.
package servers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id int64 `json:"id"`
}

// ClosingPeriod defines model for ClosingPeriod.
type ClosingPeriod struct {
	Id        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// NewClosingPeriod defines model for NewClosingPeriod.
type NewClosingPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// PurgeResult defines model for PurgeResult.
type PurgeResult struct {
	Purged int `json:"purged"`
}

// Product defines model for Product.
type Product struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Allergens   []string `json:"allergens"`
}

// ProductRequest defines model for ProductRequest.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Allergens   *[]string       `json:"allergens,omitempty"`
}

// ProductLine defines model for ProductLine.
type ProductLine struct {
	ProductId int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderType defines model for OrderType.
type OrderType string

// Defines values for OrderType.
const (
	PICKUP      OrderType = "PICKUP"
	DELIVERY    OrderType = "DELIVERY"
	RESERVATION OrderType = "RESERVATION"
)

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	Products        []ProductLine `json:"products"`
	Type            OrderType     `json:"type"`
	PickUpDate      *string       `json:"pickUpDate,omitempty"`
	DeliveryDate    *string       `json:"deliveryDate,omitempty"`
	DeliveryAddress *string       `json:"deliveryAddress,omitempty"`
	ReservationDate *string       `json:"reservationDate,omitempty"`
	Note            *string       `json:"note,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	OrderDetails
	ClientName         string `json:"clientName"`
	ClientPhoneNumber  string `json:"clientPhoneNumber"`
	ClientEmailAddress string `json:"clientEmailAddress"`
}

// Order defines model for Order.
type Order struct {
	Id                 int64         `json:"id"`
	ClientName         string        `json:"clientName"`
	ClientPhoneNumber  string        `json:"clientPhoneNumber"`
	ClientEmailAddress string        `json:"clientEmailAddress"`
	Products           []ProductLine `json:"products"`
	Type               OrderType     `json:"type"`
	PickUpDate         *string       `json:"pickUpDate,omitempty"`
	DeliveryDate       *string       `json:"deliveryDate,omitempty"`
	DeliveryAddress    string        `json:"deliveryAddress,omitempty"`
	ReservationDate    *string       `json:"reservationDate,omitempty"`
	Note               string        `json:"note,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// ProductOrderingStatus defines model for ProductOrderingStatus.
type ProductOrderingStatus struct {
	Enabled bool `json:"enabled"`
}

// CreateClosingPeriodJSONRequestBody defines body for CreateClosingPeriod for application/json ContentType.
type CreateClosingPeriodJSONRequestBody = NewClosingPeriod

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = ProductRequest

// UpdateProductJSONRequestBody defines body for UpdateProduct for application/json ContentType.
type UpdateProductJSONRequestBody = ProductRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderDetails
