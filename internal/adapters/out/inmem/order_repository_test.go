package inmem_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/inmem"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, userID string) *order.Order {
	t.Helper()

	unitPrice, err := kernel.MoneyFromFloat(3.50)
	require.NoError(t, err)
	item, err := order.NewItem(1, "Milk", unitPrice, 2)
	require.NoError(t, err)

	location, err := kernel.NewGeoPoint(37.7749, -122.4194)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress(
		"500 Market St", "San Francisco", "CA", "94105", location)
	require.NoError(t, err)

	aggregate, err := order.NewBuilder().
		SetUserID(userID).
		SetItems([]order.Item{item}).
		SetDeliveryAddress(address).
		SetPaymentMethod("card").
		Build()
	require.NoError(t, err)

	return aggregate
}

func addOrder(t *testing.T, repo *inmem.OrderRepository, userID string) *order.Order {
	t.Helper()
	aggregate := buildOrder(t, userID)
	require.NoError(t, repo.Add(context.Background(), aggregate))
	return aggregate
}

func TestOrderRepository_AddAssignsIdentifier(t *testing.T) {
	repo := inmem.NewOrderRepository()
	aggregate := buildOrder(t, "user-1")
	require.Nil(t, aggregate.ID())

	err := repo.Add(context.Background(), aggregate)

	require.NoError(t, err)
	require.NotNil(t, aggregate.ID())
	assert.NoError(t, aggregate.ID().Validate())
}

func TestOrderRepository_GetReturnsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	repo := inmem.NewOrderRepository()
	aggregate := addOrder(t, repo, "user-1")

	retrieved, err := repo.Get(ctx, *aggregate.ID())
	require.NoError(t, err)

	// Mutating the copy must not leak into the store.
	require.NoError(t, retrieved.ApplyPaymentStatus(order.PaymentCompleted))

	stored, err := repo.Get(ctx, *aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, stored.Status())
	assert.Equal(t, order.PaymentPending, stored.PaymentStatus())
}

func TestOrderRepository_GetUnknownOrder(t *testing.T) {
	repo := inmem.NewOrderRepository()

	retrieved, err := repo.Get(context.Background(), kernel.NewUUID())

	assert.Nil(t, retrieved)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_UpdatePersistsTransition(t *testing.T) {
	ctx := context.Background()
	repo := inmem.NewOrderRepository()
	aggregate := addOrder(t, repo, "user-1")

	readStatus := aggregate.Status()
	require.NoError(t, aggregate.ApplyPaymentStatus(order.PaymentCompleted))
	require.NoError(t, repo.Update(ctx, aggregate, readStatus))

	stored, err := repo.Get(ctx, *aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, stored.Status())
	assert.Equal(t, order.PaymentCompleted, stored.PaymentStatus())
}

func TestOrderRepository_UpdateWithStaleReadStatus(t *testing.T) {
	ctx := context.Background()
	repo := inmem.NewOrderRepository()
	aggregate := addOrder(t, repo, "user-1")

	winner, err := repo.Get(ctx, *aggregate.ID())
	require.NoError(t, err)
	readStatus := winner.Status()
	require.NoError(t, winner.ChangeStatus(order.StatusConfirmed))
	require.NoError(t, repo.Update(ctx, winner, readStatus))

	require.NoError(t, aggregate.ChangeStatus(order.StatusCancelled))
	err = repo.Update(ctx, aggregate, order.StatusPending)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	stored, err := repo.Get(ctx, *aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, stored.Status())
}

func TestOrderRepository_UpdateUnknownOrder(t *testing.T) {
	repo := inmem.NewOrderRepository()
	phantom := buildOrder(t, "user-1")
	require.NoError(t, phantom.AssignID(kernel.NewUUID()))
	readStatus := phantom.Status()
	require.NoError(t, phantom.ChangeStatus(order.StatusConfirmed))

	err := repo.Update(context.Background(), phantom, readStatus)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_GetByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := inmem.NewOrderRepository()

	first := addOrder(t, repo, "user-1")
	time.Sleep(5 * time.Millisecond)
	second := addOrder(t, repo, "user-1")
	addOrder(t, repo, "user-2")

	orders, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.True(t, orders[0].ID().IsEqual(*second.ID()))
	assert.True(t, orders[1].ID().IsEqual(*first.ID()))
}

func TestOrderRepository_GetByUserRequiresUserID(t *testing.T) {
	repo := inmem.NewOrderRepository()

	_, err := repo.GetByUser(context.Background(), "")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOrderRepository_GetAllUndelivered(t *testing.T) {
	ctx := context.Background()
	repo := inmem.NewOrderRepository()

	pending := addOrder(t, repo, "user-1")

	delivered := addOrder(t, repo, "user-1")
	for _, next := range []order.Status{
		order.StatusConfirmed, order.StatusPreparing,
		order.StatusOutForDelivery, order.StatusDelivered,
	} {
		readStatus := delivered.Status()
		require.NoError(t, delivered.ChangeStatus(next))
		require.NoError(t, repo.Update(ctx, delivered, readStatus))
	}

	cancelled := addOrder(t, repo, "user-1")
	readStatus := cancelled.Status()
	require.NoError(t, cancelled.ChangeStatus(order.StatusCancelled))
	require.NoError(t, repo.Update(ctx, cancelled, readStatus))

	undelivered, err := repo.GetAllUndelivered(ctx)
	require.NoError(t, err)

	require.Len(t, undelivered, 1)
	assert.True(t, undelivered[0].ID().IsEqual(*pending.ID()))
}
