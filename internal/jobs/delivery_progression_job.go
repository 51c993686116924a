package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressionJob periodically advances in-flight orders along the
// fulfillment path. Runs every 30 seconds so orders move within a minute of
// crossing their age threshold.
type DeliveryProgressionJob struct {
	handler commands.AdvanceDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryProgressionJob creates a new job for delivery progression.
// Uses AdvanceDeliveriesCommandHandler to move due orders one step forward.
func NewDeliveryProgressionJob(handler commands.AdvanceDeliveriesCommandHandler, logger *slog.Logger) *DeliveryProgressionJob {
	return &DeliveryProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_progression_job"),
	}
}

// Start begins the delivery progression job.
func (j *DeliveryProgressionJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd, err := commands.NewAdvanceDeliveriesCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to create advance deliveries command", "error", err)
			return
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progression job started (running every 30 seconds)")
	return nil
}

// Stop stops the delivery progression job.
func (j *DeliveryProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery progression job stopped")
}
