package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns an ObjectNotFoundError when no order matches; under a customer
// scope that includes orders owned by other customers.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
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

	var row *sql.Row
	if customerID := query.CustomerID(); customerID != nil {
		row = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE o.id = ? AND o.customer_id = ?`,
			query.OrderID().Bytes(), customerID.Bytes(),
		).Row()
	} else {
		row = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE o.id = ?`,
			query.OrderID().Bytes(),
		).Row()
	}

	resp, err := scanOrderResponse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
