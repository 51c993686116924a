package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations are interchangeable: the relational store and the
// in-memory store satisfy the same behavioral contract, including the
// error taxonomy.
//
// Error contract:
//   - a missing order is an errs.ObjectNotFoundError, never a plain failure
//   - an unreachable or failing store is an errs.StoreUnavailableError
//   - the two are never conflated
type OrderRepository interface {
	// Add persists a new order aggregate and assigns it its identifier.
	// The order must not carry an identifier yet; creation happens exactly once.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status or payment change to an existing order.
	// The write is conditional on the status the aggregate was read at:
	// if a concurrent writer moved the order on first, Update reports an
	// errs.IllegalTransitionError and persists nothing.
	Update(ctx context.Context, aggregate *order.Order, readStatus order.Status) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUser retrieves every order of one user, newest first.
	GetByUser(ctx context.Context, userID string) ([]*order.Order, error)

	// GetAllUndelivered retrieves every order still on the happy path,
	// oldest first. Used by the delivery progression job.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}
