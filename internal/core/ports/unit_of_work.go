package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Guard checks and the mutations they protect must share one unit of work:
// the referential guard in catalog mutations and the service existence check
// in order placement are only correct when evaluated in the same transaction
// as the write that follows them.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ServiceRepository returns a ServiceRepository bound to the current
	// transaction started by Begin().
	ServiceRepository() ServiceRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction started by Begin().
	UserRepository() UserRepository
}
