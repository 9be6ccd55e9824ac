// Package servicerepo provides data transfer objects and mapping functions for
// catalog service persistence. This package implements the repository pattern
// for the service domain aggregate, handling the conversion between domain
// entities and database representations.
package servicerepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceDTO represents the database structure for persisting catalog services.
// The composite unique index on (name, material_type) backs the
// application-level duplicate check.
type ServiceDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_services_name_material"`
	MaterialType string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_services_name_material"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for catalog services.
// Overrides GORM's default naming convention to use "services".
func (ServiceDTO) TableName() string {
	return "services"
}

// fromDomain converts a service domain aggregate to its database representation.
func fromDomain(svc *service.Service) ServiceDTO {
	return ServiceDTO{
		ID:           svc.ID().Bytes(),
		Name:         svc.Name(),
		MaterialType: svc.MaterialType(),
		Price:        svc.Price(),
	}
}

// toDomain converts a database DTO to a service domain aggregate.
func toDomain(dto ServiceDTO) (*service.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return service.RestoreService(id, dto.Name, dto.MaterialType, dto.Price)
}
