package redis_test

import (
	"context"
	"testing"
	"time"

	redisstore "grocery/internal/adapters/out/redis"
	"grocery/internal/core/domain/model/cart"
	"grocery/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, ttl time.Duration) (*redisstore.CartStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.NewCartStore(client, ttl), mr
}

func TestCartStore_GetMissingCartReturnsEmptyCart(t *testing.T) {
	store, _ := setupStore(t, 0)

	c, err := store.Get(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())
}

func TestCartStore_RoundTripPreservesEntryOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t, 0)

	c := cart.NewCart()
	require.NoError(t, c.SetQuantity(5, 2))
	require.NoError(t, c.SetQuantity(1, 3))
	require.NoError(t, c.SetQuantity(9, 1))
	require.NoError(t, store.Save(ctx, "user-1", c))

	restored, err := store.Get(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, []cart.Entry{
		{ItemID: 5, Quantity: 2},
		{ItemID: 1, Quantity: 3},
		{ItemID: 9, Quantity: 1},
	}, restored.Entries())
}

func TestCartStore_SaveSetsTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t, 30*time.Minute)

	c := cart.NewCart()
	require.NoError(t, c.SetQuantity(1, 1))
	require.NoError(t, store.Save(ctx, "user-1", c))

	assert.Equal(t, 30*time.Minute, mr.TTL("cart:user-1"))
}

func TestCartStore_ExpiredCartReadsBackEmpty(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t, time.Minute)

	c := cart.NewCart()
	require.NoError(t, c.SetQuantity(1, 1))
	require.NoError(t, store.Save(ctx, "user-1", c))

	mr.FastForward(2 * time.Minute)

	restored, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, restored.IsEmpty())
}

func TestCartStore_CorruptedPayloadFailsAsStoreUnavailable(t *testing.T) {
	store, mr := setupStore(t, 0)
	require.NoError(t, mr.Set("cart:user-1", "{not json"))

	_, err := store.Get(context.Background(), "user-1")

	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestCartStore_DeleteDropsCart(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t, 0)

	c := cart.NewCart()
	require.NoError(t, c.SetQuantity(1, 1))
	require.NoError(t, store.Save(ctx, "user-1", c))
	require.True(t, mr.Exists("cart:user-1"))

	require.NoError(t, store.Delete(ctx, "user-1"))

	assert.False(t, mr.Exists("cart:user-1"))
}

func TestCartStore_DeleteAbsentCartIsNoOp(t *testing.T) {
	store, _ := setupStore(t, 0)

	assert.NoError(t, store.Delete(context.Background(), "nobody"))
}

func TestCartStore_RequiresUserID(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t, 0)

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	err = store.Save(ctx, "", cart.NewCart())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	err = store.Delete(ctx, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
