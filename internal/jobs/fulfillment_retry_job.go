package jobs

import (
	"context"
	"log/slog"

	"tacoshare/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentRetryJob resubmits locked group orders whose storefront
// confirmation is still pending.
type FulfillmentRetryJob struct {
	handler  commands.DeliverPendingGroupOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewFulfillmentRetryJob creates a job that retries pending deliveries on the
// given cron schedule (with a seconds field, e.g. "*/30 * * * * *").
func NewFulfillmentRetryJob(
	handler commands.DeliverPendingGroupOrdersCommandHandler, schedule string, logger *slog.Logger,
) *FulfillmentRetryJob {
	return &FulfillmentRetryJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "fulfillment_retry_job"),
	}
}

// Start schedules the retry pass.
func (j *FulfillmentRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewDeliverPendingGroupOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment retry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment retry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the retry job.
func (j *FulfillmentRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment retry job stopped")
}
