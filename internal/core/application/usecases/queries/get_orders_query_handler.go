package queries

import (
	"context"
	"database/sql"
	"time"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads orders and their lines with two raw statements and joins
// them in memory. Both statements run in one read-only repeatable read transaction, so
// they see the same snapshot even while orders are being updated.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns every order sorted by id. The caller must be an admin.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	caller *user.User,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	return authorization.RequireAdmin(ctx, caller, query, h.handle)
}

func (h GetOrdersQueryHandler) handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orders []GetOrdersQueryResponse
	var lines map[kernel.OrderID][]order.ProductLine

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if orders, err = readOrders(tx); err != nil {
			return err
		}
		lines, err = readLines(tx)
		return err
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Products = lines[orders[i].ID]
		if orders[i].Products == nil {
			orders[i].Products = make([]order.ProductLine, 0)
		}
	}

	return orders, nil
}

func readOrders(tx *gorm.DB) ([]GetOrdersQueryResponse, error) {
	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := tx.Raw(`
		SELECT
			id,
			client_name,
			client_phone_number,
			client_email_address,
			type,
			pick_up_date,
			delivery_date,
			delivery_address,
			reservation_date,
			note,
			created_at
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id int64
		var orderType string
		var pickUpDate, deliveryDate, reservationDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.ClientName,
			&resp.ClientPhoneNumber,
			&resp.ClientEmailAddress,
			&orderType,
			&pickUpDate,
			&deliveryDate,
			&resp.DeliveryAddress,
			&reservationDate,
			&resp.Note,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = kernel.OrderID(id)
		resp.Type = order.Type(orderType)
		resp.PickUpDate = calendarDate(pickUpDate)
		resp.DeliveryDate = calendarDate(deliveryDate)
		resp.ReservationDate = calendarDate(reservationDate)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func readLines(tx *gorm.DB) (map[kernel.OrderID][]order.ProductLine, error) {
	lines := make(map[kernel.OrderID][]order.ProductLine)

	rows, err := tx.Raw(`
		SELECT
			order_id,
			product_id,
			quantity
		FROM order_lines
		ORDER BY order_id, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID int64
		var quantity int

		if err = rows.Scan(&orderID, &productID, &quantity); err != nil {
			return nil, err
		}

		lines[kernel.OrderID(orderID)] = append(lines[kernel.OrderID(orderID)], order.ProductLine{
			ProductID: kernel.ProductID(productID),
			Quantity:  quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func calendarDate(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return kernel.AtNoonUTC(t.Time)
}
