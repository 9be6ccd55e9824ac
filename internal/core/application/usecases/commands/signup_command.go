package commands

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrSignupCommandIsNotConstructed = errors.New(
	"SignupCommand must be created via NewSignupCommand constructor",
)

// SignupCommand represents a request to create a customer account.
// Email and password are required; the remaining profile fields are taken
// as supplied, matching the legacy signup behavior.
type SignupCommand struct { //nolint:recvcheck //using for validation
	firstName   string
	lastName    string
	email       string
	phoneNumber string
	address     string
	password    string

	guard guard.ConstructorGuard
}

// NewSignupCommand creates a command to register a customer account.
func NewSignupCommand(
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	address string,
	password string,
) (SignupCommand, error) {
	cmd := SignupCommand{
		firstName:   firstName,
		lastName:    lastName,
		phoneNumber: phoneNumber,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignupCommand) Validate() error {
	return c.guard.Validate(ErrSignupCommandIsNotConstructed)
}

// FirstName returns the supplied first name.
func (c SignupCommand) FirstName() string {
	return c.firstName
}

// LastName returns the supplied last name.
func (c SignupCommand) LastName() string {
	return c.lastName
}

// Email returns the email to register the account under.
func (c SignupCommand) Email() string {
	return c.email
}

// PhoneNumber returns the optional phone number.
func (c SignupCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the supplied delivery address.
func (c SignupCommand) Address() string {
	return c.address
}

// Password returns the plaintext password to derive a verifier from.
// It never leaves the signup flow.
func (c SignupCommand) Password() string {
	return c.password
}

func (c *SignupCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *SignupCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
