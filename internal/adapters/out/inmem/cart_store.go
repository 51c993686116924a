package inmem

import (
	"context"
	"sync"

	"grocery/internal/core/domain/model/cart"
	"grocery/internal/pkg/errs"
)

// CartStore keeps per-user carts in process memory. Carts are stored as entry
// snapshots, so callers never share a live cart instance with the store.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]cart.Entry
}

// NewCartStore creates an empty in-memory cart store.
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string][]cart.Entry),
	}
}

// Get retrieves the cart for a user. A user with no cart yields a fresh empty cart.
func (s *CartStore) Get(_ context.Context, userID string) (*cart.Cart, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	s.mu.RLock()
	entries, ok := s.carts[userID]
	s.mu.RUnlock()

	if !ok {
		return cart.NewCart(), nil
	}
	return cart.RestoreCart(entries)
}

// Save persists the cart under the user key, replacing any previous contents.
func (s *CartStore) Save(_ context.Context, userID string, c *cart.Cart) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = c.Entries()
	return nil
}

// Delete drops the cart for a user. Deleting an absent cart is a no-op.
func (s *CartStore) Delete(_ context.Context, userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
