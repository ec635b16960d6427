package order_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func mustProduct(t *testing.T, id kernel.ProductID, status product.Status) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Croissant", "", decimal.NewFromInt(2), nil, status)
	require.NoError(t, err)
	return p
}

func mustClosingPeriod(t *testing.T, start, end time.Time) *closingperiod.ClosingPeriod {
	t.Helper()
	cp, err := closingperiod.RestoreClosingPeriod(1, start, end)
	require.NoError(t, err)
	return cp
}

func newSnapshot(t *testing.T) order.Snapshot {
	t.Helper()
	eastern, err := time.LoadLocation("Canada/Eastern")
	require.NoError(t, err)

	return order.Snapshot{
		ActiveProducts: []*product.Product{mustProduct(t, 42, product.Active), mustProduct(t, 1337, product.Active)},
		ClosingPeriods: []*closingperiod.ClosingPeriod{
			mustClosingPeriod(t, day(2099, time.January, 5), day(2099, time.January, 10)),
		},
		Now: time.Date(2099, time.January, 3, 9, 0, 0, 0, eastern),
	}
}

func validClient() order.Client {
	return order.Client{Name: "Jane", PhoneNumber: "514-555-0100", EmailAddress: "jane@example.com"}
}

func deliveryDetails(date time.Time) order.Details {
	return order.Details{
		Products:        []order.ProductLine{{ProductID: 42, Quantity: 1}},
		Type:            order.Delivery,
		DeliveryDate:    date,
		DeliveryAddress: "Laval",
	}
}

func requireInvalidOrder(t *testing.T, err error, message string) {
	t.Helper()
	var invalid *order.InvalidOrderError
	require.ErrorAs(t, err, &invalid)
	require.ErrorIs(t, err, order.ErrInvalidOrder)
	assert.Equal(t, message, invalid.Message)
}

func TestNewOrder(t *testing.T) {
	snapshot := newSnapshot(t)

	t.Run("should create a delivery outside closing periods", func(t *testing.T) {
		o, err := order.NewOrder(validClient(), deliveryDetails(day(2099, time.January, 15)), snapshot)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Zero(t, o.ID())
		assert.Equal(t, order.Delivery, o.Type())
		assert.Equal(t, "Laval", o.DeliveryAddress())
		assert.Equal(t, day(2099, time.January, 15), o.DeliveryDate())
		assert.Equal(t, day(2099, time.January, 15), o.ScheduledDate())
		assert.Equal(t, []order.ProductLine{{ProductID: 42, Quantity: 1}}, o.Products())
		assert.Equal(t, snapshot.Now, o.CreatedAt())
		assert.Equal(t, "Jane", o.Client().Name)
	})

	t.Run("should reject a delivery inside a closing period", func(t *testing.T) {
		_, err := order.NewOrder(validClient(), deliveryDetails(day(2099, time.January, 7)), snapshot)

		requireInvalidOrder(t, err,
			"delivery date 2099-01-07 has to be outside closing period from 2099-01-05 to 2099-01-10")
	})

	t.Run("should reject dates on closing period bounds", func(t *testing.T) {
		for _, date := range []time.Time{
			day(2099, time.January, 5),
			day(2099, time.January, 10),
			time.Date(2099, time.January, 10, 23, 0, 0, 0, time.UTC),
		} {
			_, err := order.NewOrder(validClient(), deliveryDetails(date), snapshot)

			require.ErrorIs(t, err, order.ErrInvalidOrder, date.String())
		}
	})

	t.Run("should accept the day after a closing period", func(t *testing.T) {
		_, err := order.NewOrder(validClient(), deliveryDetails(day(2099, time.January, 11)), snapshot)

		require.NoError(t, err)
	})

	t.Run("should accept today", func(t *testing.T) {
		_, err := order.NewOrder(validClient(), deliveryDetails(day(2099, time.January, 3)), snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject yesterday", func(t *testing.T) {
		_, err := order.NewOrder(validClient(), deliveryDetails(day(2099, time.January, 2)), snapshot)

		requireInvalidOrder(t, err, "delivery date 2099-01-02 has to be in the future")
	})

	t.Run("should reject unknown product", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 15))
		details.Products = []order.ProductLine{{ProductID: 42, Quantity: 1}, {ProductID: 9, Quantity: 1}}

		_, err := order.NewOrder(validClient(), details, snapshot)

		requireInvalidOrder(t, err, "product 9 is not an active product")
	})

	t.Run("should reject archived product even when present in the snapshot", func(t *testing.T) {
		withArchived := snapshot
		withArchived.ActiveProducts = []*product.Product{mustProduct(t, 42, product.Archived)}

		_, err := order.NewOrder(validClient(), deliveryDetails(day(2099, time.January, 15)), withArchived)

		requireInvalidOrder(t, err, "product 42 is not an active product")
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 15))
		details.Products = []order.ProductLine{{ProductID: 1337, Quantity: 0}}

		_, err := order.NewOrder(validClient(), details, snapshot)

		requireInvalidOrder(t, err, "quantity 0 of product 1337 has to be greater than 0")
	})

	t.Run("should reject empty order", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 15))
		details.Products = nil

		_, err := order.NewOrder(validClient(), details, snapshot)

		requireInvalidOrder(t, err, "order has to contain at least one product")
	})

	t.Run("should reject missing delivery address", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 15))
		details.DeliveryAddress = "  "

		_, err := order.NewOrder(validClient(), details, snapshot)

		requireInvalidOrder(t, err, "delivery address has to be defined")
	})

	t.Run("should reject missing scheduling date", func(t *testing.T) {
		_, err := order.NewOrder(validClient(), order.Details{
			Products: []order.ProductLine{{ProductID: 42, Quantity: 2}},
			Type:     order.Reservation,
		}, snapshot)

		requireInvalidOrder(t, err, "reservation date has to be defined")
	})

	t.Run("should reject invalid type", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 15))
		details.Type = "TAKEAWAY"

		_, err := order.NewOrder(validClient(), details, snapshot)

		requireInvalidOrder(t, err, `order type "TAKEAWAY" is not valid`)
	})

	t.Run("should reject scheduling fields of another type", func(t *testing.T) {
		testCases := []struct {
			name    string
			details order.Details
			message string
		}{
			{
				name: "pickup with delivery address",
				details: order.Details{
					Products: []order.ProductLine{{ProductID: 42, Quantity: 1}}, Type: order.Pickup,
					PickUpDate: day(2099, time.January, 15), DeliveryAddress: "Laval",
				},
				message: "PICKUP order cannot have a delivery address",
			},
			{
				name: "delivery with pick up date",
				details: order.Details{
					Products: []order.ProductLine{{ProductID: 42, Quantity: 1}}, Type: order.Delivery,
					PickUpDate: day(2099, time.January, 15), DeliveryDate: day(2099, time.January, 15), DeliveryAddress: "Laval",
				},
				message: "DELIVERY order cannot have a pick up date",
			},
			{
				name: "reservation with delivery date",
				details: order.Details{
					Products: []order.ProductLine{{ProductID: 42, Quantity: 1}}, Type: order.Reservation,
					ReservationDate: day(2099, time.January, 15), DeliveryDate: day(2099, time.January, 15),
				},
				message: "RESERVATION order cannot have a delivery date",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(validClient(), tc.details, snapshot)

				requireInvalidOrder(t, err, tc.message)
			})
		}
	})

	t.Run("should check type before products", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 7))
		details.Products = []order.ProductLine{{ProductID: 9, Quantity: 0}}
		details.ReservationDate = day(2099, time.January, 15)

		_, err := order.NewOrder(validClient(), details, snapshot)

		requireInvalidOrder(t, err, "DELIVERY order cannot have a reservation date")
	})

	t.Run("should require client contact", func(t *testing.T) {
		client := validClient()
		client.EmailAddress = ""

		_, err := order.NewOrder(client, deliveryDetails(day(2099, time.January, 15)), snapshot)

		requireInvalidOrder(t, err, "client email address has to be defined")
	})

	t.Run("should give the same outcome for the same input", func(t *testing.T) {
		details := deliveryDetails(day(2099, time.January, 7))

		_, first := order.NewOrder(validClient(), details, snapshot)
		_, second := order.NewOrder(validClient(), details, snapshot)

		assert.Equal(t, first, second)
	})
}

func TestOrder_UpdateWith(t *testing.T) {
	snapshot := newSnapshot(t)

	existing, err := order.RestoreOrder(7, validClient(), order.Details{
		Products:   []order.ProductLine{{ProductID: 1337, Quantity: 3}},
		Type:       order.Pickup,
		PickUpDate: day(2099, time.January, 20),
		Note:       "sans sucre",
	}, day(2099, time.January, 1))
	require.NoError(t, err)

	t.Run("should update a copy and keep id and client", func(t *testing.T) {
		updated := order.Copy(existing)

		err := updated.UpdateWith(deliveryDetails(day(2099, time.January, 15)), snapshot)

		require.NoError(t, err)
		assert.Equal(t, kernel.OrderID(7), updated.ID())
		assert.Equal(t, validClient(), updated.Client())
		assert.Equal(t, order.Delivery, updated.Type())
		assert.True(t, updated.PickUpDate().IsZero())
		assert.Empty(t, updated.Note())
		assert.Equal(t, day(2099, time.January, 1), updated.CreatedAt())
		assert.Equal(t, order.Pickup, existing.Type())
	})

	t.Run("should leave the order unchanged on failure", func(t *testing.T) {
		updated := order.Copy(existing)

		err := updated.UpdateWith(deliveryDetails(day(2099, time.January, 6)), snapshot)

		require.ErrorIs(t, err, order.ErrInvalidOrder)
		assert.Equal(t, existing.Details(), updated.Details())
	})

	t.Run("should validate against the snapshot given at update time", func(t *testing.T) {
		withoutProduct := snapshot
		withoutProduct.ActiveProducts = []*product.Product{mustProduct(t, 42, product.Active)}

		err := order.Copy(existing).UpdateWith(existing.Details(), withoutProduct)

		requireInvalidOrder(t, err, "product 1337 is not an active product")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore past orders", func(t *testing.T) {
		o, err := order.RestoreOrder(1, validClient(), order.Details{
			Products:   []order.ProductLine{{ProductID: 1, Quantity: 1}},
			Type:       order.Pickup,
			PickUpDate: day(2001, time.January, 1),
		}, day(2000, time.December, 1))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("should reject inconsistent type", func(t *testing.T) {
		_, err := order.RestoreOrder(1, validClient(), order.Details{Type: "UNKNOWN"}, time.Time{})

		require.ErrorIs(t, err, order.ErrInvalidOrder)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	assert.Nil(t, order.Copy(nil))
}

func TestNewOrder_EveningTimestampOnClosedDay(t *testing.T) {
	date, err := kernel.ParseCalendarDate("2099-01-10T20:00:00-05:00")
	require.NoError(t, err)

	_, err = order.NewOrder(validClient(), deliveryDetails(date), newSnapshot(t))

	require.ErrorIs(t, err, order.ErrInvalidOrder)
	assert.Contains(t, err.Error(), "closing period from 2099-01-05 to 2099-01-10")
}
