// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The foreign key to services backs the referential guard at the database
// level: an order can never point at a service row that no longer exists.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity             int       `gorm:"type:int;not null"`
	ExpectedDeliveryDate time.Time `gorm:"not null"`
	Description          string    `gorm:"type:text"`
	Status               int       `gorm:"type:int;not null;index"`
	CreatedAt            time.Time `gorm:"not null"`

	Service servicerepo.ServiceDTO `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                   o.ID().Bytes(),
		CustomerID:           o.CustomerID().Bytes(),
		ServiceID:            o.ServiceID().Bytes(),
		Quantity:             o.Quantity(),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate(),
		Description:          o.Description(),
		Status:               int(o.Status()),
		CreatedAt:            o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		serviceID,
		dto.Quantity,
		dto.ExpectedDeliveryDate,
		dto.Description,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
