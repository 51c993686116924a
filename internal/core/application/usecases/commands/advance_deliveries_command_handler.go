package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/metrics"
)

// progressionSchedule maps a status on the fulfillment path to the order age
// at which it moves one step forward. The last step lands on the 45-minute
// delivery estimate promised at checkout.
var progressionSchedule = map[order.Status]struct {
	next  order.Status
	after time.Duration
}{
	order.StatusConfirmed:      {next: order.StatusPreparing, after: 10 * time.Minute},
	order.StatusPreparing:      {next: order.StatusOutForDelivery, after: 25 * time.Minute},
	order.StatusOutForDelivery: {next: order.StatusDelivered, after: order.DeliveryLeadTime},
}

// AdvanceDeliveriesCommandHandler advances in-flight orders along the
// fulfillment path, standing in for the external fulfillment collaborator.
// Pending orders are left alone until their payment resolves; every move
// still goes through the state machine and the conditional write, so a
// concurrent cancellation always wins over the job.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceDeliveriesCommandHandler creates a handler for delivery progression.
func NewAdvanceDeliveriesCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle advances every due order one step. A failure on one order is logged
// and does not stop the others; the whole batch commits together.
func (h *AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) error {
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
	aggregates, err := orderRepo.GetAllUndelivered(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	advanced := make([]*order.Order, 0, len(aggregates))

	for _, aggregate := range aggregates {
		step, ok := progressionSchedule[aggregate.Status()]
		if !ok || now.Sub(aggregate.CreatedAt()) < step.after {
			continue
		}

		readStatus := aggregate.Status()
		if err = aggregate.ChangeStatus(step.next); err != nil {
			slog.Warn("skipping order during delivery progression",
				"orderId", aggregate.ID().String(), "error", err)
			continue
		}

		if err = orderRepo.Update(ctx, aggregate, readStatus); err != nil {
			slog.Warn("failed to advance order",
				"orderId", aggregate.ID().String(), "error", err)
			continue
		}

		advanced = append(advanced, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range advanced {
		metrics.StatusTransitions.WithLabelValues(aggregate.Status().String()).Inc()

		if err = h.publisher.Publish(ctx, ports.NewOrderChangedEvent(aggregate)); err != nil {
			slog.Warn("failed to publish order status event",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}

	return nil
}
