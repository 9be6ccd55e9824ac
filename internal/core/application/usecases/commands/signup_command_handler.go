package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// SignupCommandHandler handles customer account creation.
// Derives a password verifier and rejects duplicate emails; the database
// unique index backs the application-level check.
type SignupCommandHandler struct {
	uowFactory UserUoWFactory
	verifier   services.PasswordVerifier
}

// NewSignupCommandHandler creates a handler for account creation.
func NewSignupCommandHandler(uowFactory UserUoWFactory, verifier services.PasswordVerifier) SignupCommandHandler {
	return SignupCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

// Handle processes the command and returns the created user.
// Fails with a ConflictError when the email is already registered.
func (h *SignupCommandHandler) Handle(ctx context.Context, cmd SignupCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, errs.NewConflictError("email", "a user with this email already exists")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	passwordHash, err := h.verifier.Derive(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(
		kernel.NewUUID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.PhoneNumber(),
		cmd.Address(),
		passwordHash,
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
