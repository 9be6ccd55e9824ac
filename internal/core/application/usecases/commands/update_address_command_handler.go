package commands

import (
	"context"
)

// UpdateAddressCommandHandler handles customer address changes.
type UpdateAddressCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory UserUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
// Fails with an ObjectNotFoundError when the customer id is unknown.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = u.UpdateAddress(cmd.NewAddress()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
