package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateServiceCommand(t *testing.T) {
	serviceID := kernel.NewUUID()

	t.Run("should create command with valid fields", func(t *testing.T) {
		cmd, err := commands.NewUpdateServiceCommand(
			serviceID, "Dry cleaning", "Wool", decimal.NewFromFloat(12.50))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, serviceID, cmd.ServiceID())
		assert.Equal(t, "Dry cleaning", cmd.Name())
		assert.Equal(t, "Wool", cmd.MaterialType())
		assert.True(t, decimal.NewFromFloat(12.50).Equal(cmd.Price()))
	})

	t.Run("should fail with zero service id", func(t *testing.T) {
		_, err := commands.NewUpdateServiceCommand(
			kernel.UUID{}, "Dry cleaning", "Wool", decimal.NewFromFloat(12.50))

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewUpdateServiceCommand(
			serviceID, "", "Wool", decimal.NewFromFloat(12.50))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty material type", func(t *testing.T) {
		_, err := commands.NewUpdateServiceCommand(
			serviceID, "Dry cleaning", "", decimal.NewFromFloat(12.50))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non positive price", func(t *testing.T) {
		_, err := commands.NewUpdateServiceCommand(
			serviceID, "Dry cleaning", "Wool", decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.UpdateServiceCommand

		require.Error(t, cmd.Validate())
	})
}
