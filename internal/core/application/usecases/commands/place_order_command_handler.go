package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates orders in Pending status after resolving the referenced service.
//
// The service existence check and the order insert run in one transaction,
// so a concurrent catalog deletion cannot invalidate the reference between
// the check and the write.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created order.
// Fails with an ObjectNotFoundError when the service does not exist; in
// that case no order is created.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID()); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.ServiceID(),
		cmd.Quantity(),
		cmd.ExpectedDeliveryDate(),
		cmd.Description(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
