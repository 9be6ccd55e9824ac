package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetServicesQueryIsNotConstructed = errors.New(
	"GetServicesQuery must be created via NewGetServicesQuery constructor",
)

// GetServicesQuery retrieves the full catalog of laundry services.
//
// Example:
//
//	query := NewGetServicesQuery()
//	handler := NewGetServicesQueryHandler(db)
//
//	services, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get services: %w", err)
//	}
//
//	for _, svc := range services {
//	    fmt.Printf("%s (%s): %s\n", svc.Name, svc.MaterialType, svc.Price)
//	}
type GetServicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetServicesQuery creates a query to retrieve the service catalog.
// This is a parameterless query that fetches every service.
func NewGetServicesQuery() GetServicesQuery {
	return GetServicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetServicesQueryIsNotConstructed)
}

// ServiceResponse represents catalog service information in read models.
// Shared by the catalog listing and the single-service lookup.
type ServiceResponse struct {
	ID           kernel.UUID
	Name         string
	MaterialType string
	Price        decimal.Decimal
}
