package services_test

import (
	"strings"
	"testing"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordVerifier_Derive(t *testing.T) {
	verifier := services.NewPasswordVerifier()

	t.Run("should produce salt.key material", func(t *testing.T) {
		material, err := verifier.Derive("s3cret")

		require.NoError(t, err)
		parts := strings.Split(material, ".")
		require.Len(t, parts, 2)
		assert.NotEmpty(t, parts[0])
		assert.NotEmpty(t, parts[1])
		assert.NotContains(t, material, "s3cret")
	})

	t.Run("should salt every derivation", func(t *testing.T) {
		first, err := verifier.Derive("s3cret")
		require.NoError(t, err)
		second, err := verifier.Derive("s3cret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("should reject empty password", func(t *testing.T) {
		_, err := verifier.Derive("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPasswordVerifier_Verify(t *testing.T) {
	verifier := services.NewPasswordVerifier()

	t.Run("should accept matching password", func(t *testing.T) {
		material, err := verifier.Derive("correct horse battery staple")
		require.NoError(t, err)

		assert.True(t, verifier.Verify("correct horse battery staple", material))
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		material, err := verifier.Derive("s3cret")
		require.NoError(t, err)

		assert.False(t, verifier.Verify("wrong", material))
		assert.False(t, verifier.Verify("", material))
	})

	t.Run("should reject malformed material", func(t *testing.T) {
		for _, material := range []string{
			"",
			"no-separator",
			"!!!.!!!",
			"c2FsdA==.***",
		} {
			assert.False(t, verifier.Verify("s3cret", material))
		}
	})
}
