package commands

import (
	"context"

	"laundry/internal/pkg/errs"
)

// DeleteServiceCommandHandler handles catalog service removal.
// Deletion is refused while any order references the service; the guard
// check and the delete share one transaction.
type DeleteServiceCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteServiceCommandHandler creates a handler for catalog deletions.
func NewDeleteServiceCommandHandler(uowFactory UoWFactory) DeleteServiceCommandHandler {
	return DeleteServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *DeleteServiceCommandHandler) Handle(ctx context.Context, cmd DeleteServiceCommand) error {
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

	serviceRepo := uow.ServiceRepository()

	if _, err := serviceRepo.Get(ctx, cmd.ServiceID()); err != nil {
		return err
	}

	referenced, err := uow.OrderRepository().ExistsForService(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("service", "existing orders reference this service")
	}

	if err = serviceRepo.Delete(ctx, cmd.ServiceID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
