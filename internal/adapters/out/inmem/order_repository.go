// Package inmem provides in-memory adapter implementations. They carry the
// same error contract as the database-backed adapters and serve as the
// reference implementation for local development and tests.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
)

// OrderRepository keeps order aggregates in a mutex-guarded map.
// Stored aggregates are cloned on the way in and out, so callers can never
// mutate repository state without going through Update.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	seq    []kernel.UUID
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
		seq:    make([]kernel.UUID, 0),
	}
}

// Add saves a new order, minting and assigning its identifier.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.NewUUID()); err != nil {
		return err
	}

	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[*aggregate.ID()] = stored
	r.seq = append(r.seq, *aggregate.ID())
	return nil
}

// Update persists a status or payment change to an existing order.
// The write only lands if the stored status still equals readStatus,
// mirroring the conditional update of the database-backed repository.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order, readStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := readStatus.Validate(); err != nil {
		return err
	}

	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[*aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if current.Status() != readStatus {
		return errs.NewIllegalTransitionErrorWithCause(
			readStatus.String(), aggregate.Status().String(),
			fmt.Errorf("order was changed concurrently"))
	}

	r.orders[*aggregate.ID()] = stored
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return clone(stored)
}

// GetByUser retrieves all orders of one user, newest first.
func (r *OrderRepository) GetByUser(_ context.Context, userID string) ([]*order.Order, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, id := range r.seq {
		stored := r.orders[id]
		if stored.UserID() != userID {
			continue
		}
		restored, err := clone(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

// GetAllUndelivered retrieves every order still on the happy path, oldest first.
func (r *OrderRepository) GetAllUndelivered(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, id := range r.seq {
		stored := r.orders[id]
		if stored.Status() == order.StatusDelivered || stored.Status() == order.StatusCancelled {
			continue
		}
		restored, err := clone(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}

// clone rebuilds an independent copy of the aggregate, the same way a
// database round trip would.
func clone(aggregate *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		*aggregate.ID(),
		aggregate.UserID(),
		aggregate.Items(),
		aggregate.Subtotal(),
		aggregate.DeliveryFee(),
		aggregate.Total(),
		aggregate.Status(),
		aggregate.PaymentStatus(),
		aggregate.DeliveryAddress(),
		aggregate.CreatedAt(),
		aggregate.EstimatedDeliveryAt(),
		aggregate.SpecialInstructions(),
		aggregate.PaymentMethod(),
	)
}
