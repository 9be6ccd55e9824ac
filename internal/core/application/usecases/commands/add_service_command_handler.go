package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"
)

// AddServiceCommandHandler handles the business logic for adding catalog
// services. Rejects duplicates of an existing (name, materialType) pair.
type AddServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewAddServiceCommandHandler creates a handler for catalog additions.
func NewAddServiceCommandHandler(uowFactory ServiceUoWFactory) AddServiceCommandHandler {
	return AddServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created service.
// Fails with a ConflictError when a service with the same
// (name, materialType) pair already exists, regardless of price.
func (h *AddServiceCommandHandler) Handle(ctx context.Context, cmd AddServiceCommand) (*service.Service, error) {
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

	_, err := serviceRepo.GetByNameAndMaterial(ctx, cmd.Name(), cmd.MaterialType())
	if err == nil {
		return nil, errs.NewConflictError("service", "a service for this material type already exists")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	svc, err := service.NewService(kernel.NewUUID(), cmd.Name(), cmd.MaterialType(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = serviceRepo.Add(ctx, svc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}
