package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the account directory.
type UserRepository interface {
	// Add persists a new user. A unique index on email backs the
	// application-level uniqueness check; a database unique violation is
	// translated into a ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves the user registered under the given email.
	// Returns an ObjectNotFoundError when no account exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
