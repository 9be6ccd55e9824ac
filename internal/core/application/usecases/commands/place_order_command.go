package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request for a quantity of a
// catalog service to be ready by an expected delivery date.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID           kernel.UUID
	serviceID            kernel.UUID
	quantity             int
	expectedDeliveryDate time.Time
	description          string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// The service id must be set, the quantity positive and the expected
// delivery date non-zero. The description is optional.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	serviceID kernel.UUID,
	quantity int,
	expectedDeliveryDate time.Time,
	description string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setServiceID(serviceID),
		cmd.setQuantity(quantity),
		cmd.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the identity of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceID returns the identifier of the requested catalog service.
func (c PlaceOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Quantity returns the number of items.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// ExpectedDeliveryDate returns when the customer expects the order back.
func (c PlaceOrderCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

// Description returns the optional free-text description.
func (c PlaceOrderCommand) Description() string {
	return c.description
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}
	c.expectedDeliveryDate = date
	return nil
}
