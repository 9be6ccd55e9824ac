package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery checks a customer's credentials and retrieves their profile.
// The password never appears in the response.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a credential check query.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the email supplied by the caller.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password supplied by the caller.
// It is only ever compared against stored verifier material.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse represents the authenticated account's profile.
type LoginQueryResponse struct {
	ID          kernel.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	IsAdmin     bool
	CreatedAt   time.Time
}
