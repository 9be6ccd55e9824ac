package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a customer's request to change their
// delivery address. The address is the only profile field mutable in this
// core.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	newAddress string

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to update a customer's address.
// Blank or whitespace-only addresses are rejected.
func NewUpdateAddressCommand(customerID kernel.UUID, newAddress string) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setNewAddress(newAddress),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// CustomerID returns the identity of the requesting customer.
func (c UpdateAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// NewAddress returns the address to store.
func (c UpdateAddressCommand) NewAddress() string {
	return c.newAddress
}

func (c *UpdateAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateAddressCommand) setNewAddress(newAddress string) error {
	if strings.TrimSpace(newAddress) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.newAddress = newAddress
	return nil
}
