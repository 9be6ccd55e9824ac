package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Joins orders with the service catalog so listings carry the service name,
// material type and price alongside the order fields.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders, newest first.
// The customer scope, when set, filters to that customer's orders.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			o.id,
			o.customer_id,
			o.service_id,
			s.name,
			s.material_type,
			s.price,
			o.quantity,
			o.expected_delivery_date,
			o.description,
			o.status,
			o.created_at
		FROM orders o
		JOIN services s ON s.id = o.service_id
	`

	var rows *sql.Rows
	var err error
	if customerID := query.CustomerID(); customerID != nil {
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE o.customer_id = ? ORDER BY o.created_at DESC`,
			customerID.Bytes(),
		).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery + `ORDER BY o.created_at DESC`,
		).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderResponse maps one joined order row to its read model.
// Shared with the single-order lookup, which scans the same column list.
func scanOrderResponse(row interface{ Scan(dest ...any) error }) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID, serviceID uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&customerID,
		&serviceID,
		&resp.ServiceName,
		&resp.MaterialType,
		&resp.Price,
		&resp.Quantity,
		&resp.ExpectedDeliveryDate,
		&resp.Description,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = custID

	svcID, err := kernel.UUIDFromBytes(serviceID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ServiceID = svcID

	resp.Status = order.Status(status)
	if err = resp.Status.Validate(); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
