package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSignupCommand(t *testing.T) {
	t.Run("should create command with valid fields", func(t *testing.T) {
		cmd, err := commands.NewSignupCommand(
			"Jane", "Doe", "jane@example.com", "+15550100", "12 Main St", "s3cret")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "jane@example.com", cmd.Email())
		assert.Equal(t, "s3cret", cmd.Password())
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := commands.NewSignupCommand(
			"Jane", "Doe", "", "+15550100", "12 Main St", "s3cret")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty password", func(t *testing.T) {
		_, err := commands.NewSignupCommand(
			"Jane", "Doe", "jane@example.com", "+15550100", "12 Main St", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSignupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSignupCommand(
		"Jane", "Doe", "jane@example.com", "+15550100", "12 Main St", "s3cret")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "jane@example.com")).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	verifier := services.NewPasswordVerifier()
	h := commands.NewSignupCommandHandler(factory, verifier)
	u, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "jane@example.com", u.Email())
	assert.False(t, u.IsAdmin())
	assert.True(t, verifier.Verify("s3cret", u.PasswordHash()))
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignupCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSignupCommand(
		"Jane", "Doe", "jane@example.com", "+15550100", "12 Main St", "s3cret")
	require.NoError(t, err)

	existing, err := user.NewUser(
		kernel.NewUUID(), "Jane", "Doe", "jane@example.com",
		"+15550100", "12 Main St", "AAAA.BBBB")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignupCommandHandler(factory, services.NewPasswordVerifier())
	u, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Nil(t, u)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
