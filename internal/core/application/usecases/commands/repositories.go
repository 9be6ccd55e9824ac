// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest unit of work that covers the
// aggregates they touch; catalog mutations and order placement need the
// cross-aggregate UoW because their guard checks and writes must share one
// transaction.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ServiceRepoFactory provides access to the service repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ServiceUoW manages transactions for catalog-only operations.
	ServiceUoW interface {
		TxManager
		ServiceRepoFactory
	}

	// ServiceUoWFactory creates new catalog unit of work instances.
	ServiceUoWFactory interface {
		Create() ServiceUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW manages transactions spanning the catalog and the order store.
	// Used by operations whose correctness depends on evaluating a check
	// and a mutation atomically: the referential guard in service
	// update/delete, and the service existence check in order placement.
	UoW interface {
		TxManager
		ServiceRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
