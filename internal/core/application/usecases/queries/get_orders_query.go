package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via a NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders joined with their catalog service.
// The administrative form covers every order; the customer form is scoped
// to the orders the customer placed.
type GetOrdersQuery struct {
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query over all orders in the system.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryForCustomer creates a query scoped to one customer's orders.
func NewGetOrdersQueryForCustomer(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer scope, or nil for the administrative form.
func (q GetOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// OrderResponse represents order information in read models, denormalized
// with the referenced service's name, material type and price. Shared by
// the order listings and the single-order lookup.
type OrderResponse struct {
	ID                   kernel.UUID
	CustomerID           kernel.UUID
	ServiceID            kernel.UUID
	ServiceName          string
	MaterialType         string
	Price                decimal.Decimal
	Quantity             int
	ExpectedDeliveryDate time.Time
	Description          string
	Status               order.Status
	CreatedAt            time.Time
}
