package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/ports"
	"grocery/internal/pkg/metrics"
)

// UpdateOrderStatusCommandHandler handles order status changes. The order is
// loaded inside a transaction, the pure state machine decides the move, and
// the write is conditional on the status the order was loaded at, so two
// racing writers cannot both win.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status change operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// On an illegal transition the order is untouched and the state machine's
// error is returned to the caller unchanged.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	readStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, readStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.StatusTransitions.WithLabelValues(aggregate.Status().String()).Inc()

	if err = h.publisher.Publish(ctx, ports.NewOrderChangedEvent(aggregate)); err != nil {
		slog.Warn("failed to publish order status event",
			"orderId", cmd.OrderID().String(), "error", err)
	}

	return nil
}
