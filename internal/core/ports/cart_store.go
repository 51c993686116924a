package ports

import (
	"context"

	"grocery/internal/core/domain/model/cart"
)

// CartStore keeps the transient per-user cart between requests.
// A cart has no persisted identity of its own: it lives under the user key,
// expires with the session, and is discarded after checkout.
type CartStore interface {
	// Get retrieves the cart for a user. A user with no cart yet yields a
	// fresh empty cart, not an error.
	Get(ctx context.Context, userID string) (*cart.Cart, error)

	// Save persists the cart under the user key, replacing any previous contents.
	Save(ctx context.Context, userID string, c *cart.Cart) error

	// Delete drops the cart for a user. Deleting an absent cart is a no-op.
	Delete(ctx context.Context, userID string) error
}
