package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDeleteServiceCommandIsNotConstructed = errors.New(
	"DeleteServiceCommand must be created via NewDeleteServiceCommand constructor",
)

// DeleteServiceCommand represents a request to remove a catalog service.
type DeleteServiceCommand struct { //nolint:recvcheck //using for validation
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteServiceCommand creates a command to delete a catalog service.
func NewDeleteServiceCommand(serviceID kernel.UUID) (DeleteServiceCommand, error) {
	cmd := DeleteServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceID(serviceID); err != nil {
		return DeleteServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteServiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceCommandIsNotConstructed)
}

// ServiceID returns the identifier of the service to delete.
func (c DeleteServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c *DeleteServiceCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}
