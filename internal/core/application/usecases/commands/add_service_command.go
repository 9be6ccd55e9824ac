package commands

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddServiceCommandIsNotConstructed = errors.New(
	"AddServiceCommand must be created via NewAddServiceCommand constructor",
)

// AddServiceCommand represents a request to add a catalog service:
// a priced laundry offering for one material type.
type AddServiceCommand struct { //nolint:recvcheck //using for validation
	name         string
	materialType string
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddServiceCommand creates a command to add a catalog service.
// Name and material type must be non-empty and the price positive.
func NewAddServiceCommand(name, materialType string, price decimal.Decimal) (AddServiceCommand, error) {
	cmd := AddServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setMaterialType(materialType),
		cmd.setPrice(price),
	); err != nil {
		return AddServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddServiceCommand) Validate() error {
	return c.guard.Validate(ErrAddServiceCommandIsNotConstructed)
}

// Name returns the service name.
func (c AddServiceCommand) Name() string {
	return c.name
}

// MaterialType returns the material type the price applies to.
func (c AddServiceCommand) MaterialType() string {
	return c.materialType
}

// Price returns the price per item.
func (c AddServiceCommand) Price() decimal.Decimal {
	return c.price
}

func (c *AddServiceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("service name")
	}
	c.name = name
	return nil
}

func (c *AddServiceCommand) setMaterialType(materialType string) error {
	if materialType == "" {
		return errs.NewValueIsRequiredError("material type")
	}
	c.materialType = materialType
	return nil
}

func (c *AddServiceCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
