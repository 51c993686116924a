// Package redis provides the session cart store backed by Redis.
// Carts are transient: each cart lives under its user key with a TTL and is
// dropped after checkout, so an expired key simply reads back as an empty cart.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/cart"
	"grocery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultCartTTL is how long an untouched cart survives between requests.
const DefaultCartTTL = 24 * time.Hour

// entryDTO is one cart line as stored in Redis.
type entryDTO struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// CartStore implements ports.CartStore on a Redis client.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a cart store over the given client.
// A non-positive ttl falls back to DefaultCartTTL.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartStore{client: client, ttl: ttl}
}

// Get retrieves the cart for a user. A missing or expired key yields a fresh
// empty cart, not an error.
func (s *CartStore) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get cart", err)
	}

	var entries []entryDTO
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, errs.NewStoreUnavailableError("get cart", err)
	}

	cartEntries := make([]cart.Entry, 0, len(entries))
	for _, entry := range entries {
		cartEntries = append(cartEntries, cart.Entry{
			ItemID:   entry.ItemID,
			Quantity: entry.Quantity,
		})
	}
	return cart.RestoreCart(cartEntries)
}

// Save persists the cart under the user key, resetting its TTL.
func (s *CartStore) Save(ctx context.Context, userID string, c *cart.Cart) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	entries := make([]entryDTO, 0)
	for _, entry := range c.Entries() {
		entries = append(entries, entryDTO{
			ItemID:   entry.ItemID,
			Quantity: entry.Quantity,
		})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return errs.NewStoreUnavailableError("save cart", err)
	}

	if err = s.client.Set(ctx, cartKey(userID), data, s.ttl).Err(); err != nil {
		return errs.NewStoreUnavailableError("save cart", err)
	}
	return nil
}

// Delete drops the cart for a user. Deleting an absent cart is a no-op.
func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errs.NewStoreUnavailableError("delete cart", err)
	}
	return nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
