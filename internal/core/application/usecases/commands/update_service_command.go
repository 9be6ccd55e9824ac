package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateServiceCommandIsNotConstructed = errors.New(
	"UpdateServiceCommand must be created via NewUpdateServiceCommand constructor",
)

// UpdateServiceCommand represents a request to overwrite the mutable fields
// of a catalog service: name, material type and price.
type UpdateServiceCommand struct { //nolint:recvcheck //using for validation
	serviceID    kernel.UUID
	name         string
	materialType string
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateServiceCommand creates a command to update a catalog service.
func NewUpdateServiceCommand(
	serviceID kernel.UUID,
	name string,
	materialType string,
	price decimal.Decimal,
) (UpdateServiceCommand, error) {
	cmd := UpdateServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceID(serviceID),
		cmd.setName(name),
		cmd.setMaterialType(materialType),
		cmd.setPrice(price),
	); err != nil {
		return UpdateServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceCommandIsNotConstructed)
}

// ServiceID returns the identifier of the service to update.
func (c UpdateServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Name returns the new service name.
func (c UpdateServiceCommand) Name() string {
	return c.name
}

// MaterialType returns the new material type.
func (c UpdateServiceCommand) MaterialType() string {
	return c.materialType
}

// Price returns the new price per item.
func (c UpdateServiceCommand) Price() decimal.Decimal {
	return c.price
}

func (c *UpdateServiceCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *UpdateServiceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("service name")
	}
	c.name = name
	return nil
}

func (c *UpdateServiceCommand) setMaterialType(materialType string) error {
	if materialType == "" {
		return errs.NewValueIsRequiredError("material type")
	}
	c.materialType = materialType
	return nil
}

func (c *UpdateServiceCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
