// Package ports defines repository and unit-of-work interfaces for the
// laundry domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
)

// ServiceRepository defines the persistence contract for catalog services.
type ServiceRepository interface {
	// Add persists a new service. The service must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *service.Service) error

	// Update persists changes to an existing service.
	Update(ctx context.Context, aggregate *service.Service) error

	// Delete removes a service from the catalog.
	// Callers must first consult OrderRepository.ExistsForService within
	// the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)

	// GetByNameAndMaterial retrieves the service with the given
	// (name, materialType) pair, which is unique across the catalog.
	// Returns an ObjectNotFoundError when no such service exists.
	GetByNameAndMaterial(ctx context.Context, name, materialType string) (*service.Service, error)

	// GetAll retrieves every service in the catalog.
	// An empty catalog yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]*service.Service, error)
}
