package services

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	iterations = 10000
	keyLength  = 32
)

// PasswordVerifier is a domain service that derives and checks salted
// one-way password verifiers, so plaintext passwords are never stored.
//
// Verifier material is PBKDF2-HMAC-SHA256 with 10000 iterations over a
// random 16-byte salt, encoded as "base64(salt).base64(key)". The format
// matches what the legacy system stored, so existing accounts keep working.
type PasswordVerifier struct{}

// NewPasswordVerifier creates a new PasswordVerifier instance.
func NewPasswordVerifier() PasswordVerifier {
	return PasswordVerifier{}
}

// Derive produces verifier material for a password.
// An empty password is rejected.
func (PasswordVerifier) Derive(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(salt) + "." +
		base64.StdEncoding.EncodeToString(key), nil
}

// Verify reports whether the password matches the stored verifier material.
// Malformed material never matches.
func (PasswordVerifier) Verify(password, verifier string) bool {
	salt64, key64, ok := strings.Cut(verifier, ".")
	if !ok {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(salt64)
	if err != nil {
		return false
	}

	key, err := base64.StdEncoding.DecodeString(key64)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return hmac.Equal(derived, key)
}
