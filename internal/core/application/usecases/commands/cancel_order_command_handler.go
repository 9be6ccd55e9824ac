package commands

import (
	"context"
)

// CancelOrderCommandHandler handles customer-initiated cancellation.
// The ownership filter is part of the lookup: an order belonging to another
// customer is indistinguishable from a missing one.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
// Fails with an ObjectNotFoundError when no order with that id belongs to
// the requesting customer, and with an InvalidTransitionError when the
// order is already Completed or Cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForCustomer(ctx, cmd.OrderID(), cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
