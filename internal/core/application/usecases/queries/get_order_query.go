package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via a NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order joined with its catalog service.
// The customer form additionally requires the order to belong to the
// requesting customer; an order owned by someone else reads as missing.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an administrative query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrderQueryForCustomer creates a customer-scoped query for one order.
func NewGetOrderQueryForCustomer(orderID, customerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:    orderID,
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the customer scope, or nil for the administrative form.
func (q GetOrderQuery) CustomerID() *kernel.UUID {
	return q.customerID
}
