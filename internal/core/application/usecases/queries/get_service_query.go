package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetServiceQueryIsNotConstructed = errors.New(
	"GetServiceQuery must be created via NewGetServiceQuery constructor",
)

// GetServiceQuery retrieves one catalog service by its identifier.
type GetServiceQuery struct {
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetServiceQuery creates a query to retrieve a single catalog service.
func NewGetServiceQuery(serviceID kernel.UUID) (GetServiceQuery, error) {
	if err := serviceID.Validate(); err != nil {
		return GetServiceQuery{}, err
	}

	return GetServiceQuery{
		serviceID: serviceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetServiceQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceQueryIsNotConstructed)
}

// ServiceID returns the identifier of the requested service.
func (q GetServiceQuery) ServiceID() kernel.UUID {
	return q.serviceID
}
