package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePaymentStatusCommandHandler_Handle_Completed(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.StatusPending)
	cmd, err := commands.NewUpdatePaymentStatusCommand(*aggregate.ID(), order.PaymentCompleted)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, *aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, order.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderChangedEvent")).
		Return(nil).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentCompleted, aggregate.PaymentStatus())
	assert.Equal(t, order.StatusConfirmed, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdatePaymentStatusCommandHandler_Handle_Failed(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.StatusPending)
	cmd, err := commands.NewUpdatePaymentStatusCommand(*aggregate.ID(), order.PaymentFailed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, *aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, order.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderChangedEvent")).
		Return(nil).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentFailed, aggregate.PaymentStatus())
	assert.Equal(t, order.StatusCancelled, aggregate.Status())
}

func TestUpdatePaymentStatusCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.StatusPending)
	require.NoError(t, aggregate.ApplyPaymentStatus(order.PaymentCompleted))

	cmd, err := commands.NewUpdatePaymentStatusCommand(*aggregate.ID(), order.PaymentFailed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, *aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Equal(t, order.PaymentCompleted, aggregate.PaymentStatus())
	assert.Equal(t, order.StatusConfirmed, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewUpdatePaymentStatusCommand(t *testing.T) {
	t.Run("should reject a zero order id", func(t *testing.T) {
		_, err := commands.NewUpdatePaymentStatusCommand(kernel.UUID{}, order.PaymentCompleted)
		require.Error(t, err)
	})

	t.Run("should reject an invalid payment status", func(t *testing.T) {
		_, err := commands.NewUpdatePaymentStatusCommand(kernel.NewUUID(), order.PaymentUnknown)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
