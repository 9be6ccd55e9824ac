package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountOverdueOrdersQueryHandler counts orders past their expected delivery
// date that have not yet reached a terminal status.
type CountOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountOverdueOrdersQueryHandler(db *gorm.DB) CountOverdueOrdersQueryHandler {
	return CountOverdueOrdersQueryHandler{db: db}
}

func (h CountOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountOverdueOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE expected_delivery_date < ?
		  AND status NOT IN (?, ?)
	`, query.AsOf(), int(order.Delivered), int(order.Cancelled)).Row()

	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
