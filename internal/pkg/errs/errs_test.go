package errs_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: email", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: email (cause: missing field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("cause with newlines is flattened", func(t *testing.T) {
		cause := errors.New("first\nsecond")
		err := errs.NewValueIsInvalidErrorWithCause("description", cause)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("serviceId", "123")

		assert.Equal(t, "serviceId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row scan failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 456 (cause: row scan failed)",
			err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("service", "a service for this material type already exists")

		assert.Equal(t, "service", err.ParamName)
		assert.Equal(t,
			"conflict: service: a service for this material type already exists",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewConflictErrorWithCause("email", "already registered", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: unique constraint violated)")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("Completed", "Cancelled")

	assert.Equal(t, "Completed", err.From)
	assert.Equal(t, "Cancelled", err.To)
	assert.Equal(t, "invalid status transition: Completed -> Cancelled", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("invalid email or password")

		assert.Equal(t, "unauthorized: invalid email or password", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("header missing")
		err := errs.NewUnauthorizedErrorWithCause("customer identity not supplied", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: header missing)")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewObjectNotFoundError("serviceId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewConflictError("service", "duplicate"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewInvalidTransitionError("Cancelled", "Cancelled"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewUnauthorizedError("no identity"), errs.ErrUnauthorized)
}
