package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"
)

// UpdateServiceCommandHandler handles catalog service updates.
//
// The update is refused while any order references the service (the
// referential guard) or when another service already holds the requested
// (name, materialType) pair. Both checks run in the same transaction as the
// write, so no order can slip in between the guard check and the mutation.
type UpdateServiceCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateServiceCommandHandler creates a handler for catalog updates.
func NewUpdateServiceCommandHandler(uowFactory UoWFactory) UpdateServiceCommandHandler {
	return UpdateServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated service.
func (h *UpdateServiceCommandHandler) Handle(ctx context.Context, cmd UpdateServiceCommand) (*service.Service, error) {
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

	serviceRepo := uow.ServiceRepository()

	svc, err := serviceRepo.Get(ctx, cmd.ServiceID())
	if err != nil {
		return nil, err
	}

	referenced, err := uow.OrderRepository().ExistsForService(ctx, cmd.ServiceID())
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, errs.NewConflictError("service", "existing orders reference this service")
	}

	other, err := serviceRepo.GetByNameAndMaterial(ctx, cmd.Name(), cmd.MaterialType())
	if err == nil && !other.IsEqual(svc) {
		return nil, errs.NewConflictError("service", "a service for this material type already exists")
	}
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = svc.Update(cmd.Name(), cmd.MaterialType(), cmd.Price()); err != nil {
		return nil, err
	}

	if err = serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}
