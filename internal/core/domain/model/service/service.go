package service

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created through NewService or RestoreService.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Service represents a catalog entry: a chargeable laundry offering for a
// given material type.
//
// Service maintains these invariants:
//   - Name and material type must be non-empty
//   - Price must be a positive decimal
//   - The (name, materialType) pair is unique across the catalog; uniqueness
//     is enforced by the catalog use cases, not the aggregate itself
//
// Mutation and deletion are additionally guarded by the order store: a
// service referenced by any order cannot be changed or removed.
type Service struct {
	id           kernel.UUID
	name         string
	materialType string
	price        decimal.Decimal

	isConstructed bool
}

// NewService creates a new catalog Service with validation.
func NewService(id kernel.UUID, name, materialType string, price decimal.Decimal) (*Service, error) {
	s := &Service{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setMaterialType(materialType),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService reconstructs a Service from persistence.
// Validation rules are identical to NewService.
func RestoreService(id kernel.UUID, name, materialType string, price decimal.Decimal) (*Service, error) {
	return NewService(id, name, materialType, price)
}

// Validate ensures the Service was constructed through NewService.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two services by their unique identifiers.
func (s *Service) IsEqual(other *Service) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the service name, e.g. "Ironing" or "Dry Cleaning".
func (s *Service) Name() string {
	return s.name
}

// MaterialType returns the material the price applies to, e.g. "Cotton".
func (s *Service) MaterialType() string {
	return s.materialType
}

// Price returns the price charged per item of this service.
func (s *Service) Price() decimal.Decimal {
	return s.price
}

// Update overwrites the three mutable fields in place after validation.
// Callers must first verify no order references the service and that the
// new (name, materialType) pair does not collide with another service.
func (s *Service) Update(name, materialType string, price decimal.Decimal) error {
	updated := &Service{}
	if err := errors.Join(
		updated.setName(name),
		updated.setMaterialType(materialType),
		updated.setPrice(price),
	); err != nil {
		return err
	}

	s.name = updated.name
	s.materialType = updated.materialType
	s.price = updated.price
	return nil
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("service name")
	}
	s.name = name
	return nil
}

func (s *Service) setMaterialType(materialType string) error {
	if materialType == "" {
		return errs.NewValueIsRequiredError("material type")
	}
	s.materialType = materialType
	return nil
}

func (s *Service) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid", fmt.Errorf("%s is not greater than 0", price))
	}
	s.price = price
	return nil
}
