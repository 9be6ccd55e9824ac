package user

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents an account in the directory: a customer or an
// administrator, identified by a unique email address.
//
// The password is never stored; PasswordHash holds the salted one-way
// verifier derived at signup. Email uniqueness is enforced at creation by
// the signup use case and backed by a database unique index. In this core,
// the address is the only profile field mutated after creation.
type User struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	email        string
	phoneNumber  string
	address      string
	isAdmin      bool
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a new customer account. The administrator flag is always
// false for accounts created through signup; administrators are provisioned
// out of band. The creation timestamp is set to the current UTC time.
func NewUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	address string,
	passwordHash string,
) (*User, error) {
	u := &User{
		firstName:     firstName,
		lastName:      lastName,
		phoneNumber:   phoneNumber,
		address:       address,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence, including the
// administrator flag and stored creation timestamp.
func RestoreUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	address string,
	isAdmin bool,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		firstName:     firstName,
		lastName:      lastName,
		phoneNumber:   phoneNumber,
		address:       address,
		isAdmin:       isAdmin,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was constructed through NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Email returns the unique email address the account is registered under.
func (u *User) Email() string {
	return u.email
}

// PhoneNumber returns the optional phone number.
func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

// Address returns the delivery address.
func (u *User) Address() string {
	return u.address
}

// IsAdmin reports whether the account has the administrator flag set.
func (u *User) IsAdmin() bool {
	return u.isAdmin
}

// PasswordHash returns the stored verifier material.
// Transport-facing responses must never carry this value.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the account creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdateAddress overwrites the delivery address.
// Blank or whitespace-only addresses are rejected.
func (u *User) UpdateAddress(newAddress string) error {
	if strings.TrimSpace(newAddress) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	u.address = newAddress
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
