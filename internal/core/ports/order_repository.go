package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Status is the only field that changes after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier regardless of owner.
	// Used by administrative operations.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForCustomer retrieves an order by identifier, constrained to the
	// given owning customer. Returns an ObjectNotFoundError when the order
	// does not exist or belongs to a different customer.
	GetForCustomer(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error)

	// ExistsForService reports whether any order references the service.
	// This is the referential guard consulted by catalog mutations; it must
	// run inside the same transaction as the mutation it guards.
	ExistsForService(ctx context.Context, serviceID kernel.UUID) (bool, error)
}
