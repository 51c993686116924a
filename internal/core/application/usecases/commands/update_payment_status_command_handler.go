package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/ports"
	"grocery/internal/pkg/metrics"
)

// UpdatePaymentStatusCommandHandler handles reported payment outcomes.
// A completed payment confirms a pending order; a failed payment cancels a
// pending or confirmed order. Both the payment status and the forced order
// status are persisted in one conditional write.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment outcome operations.
func NewUpdatePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment outcome command.
// On an illegal transition, including a payment reported twice, nothing is
// persisted and the state machine's error is returned unchanged.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
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
	if err = aggregate.ApplyPaymentStatus(cmd.PaymentStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, readStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.PaymentTransitions.WithLabelValues(aggregate.PaymentStatus().String()).Inc()

	if err = h.publisher.Publish(ctx, ports.NewOrderChangedEvent(aggregate)); err != nil {
		slog.Warn("failed to publish payment status event",
			"orderId", cmd.OrderID().String(), "error", err)
	}

	return nil
}
