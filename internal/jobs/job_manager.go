package jobs

import (
	"fmt"
	"log/slog"

	"tacoshare/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fulfillmentRetryJob *FulfillmentRetryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	deliverPendingHandler commands.DeliverPendingGroupOrdersCommandHandler,
	retrySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fulfillmentRetryJob: NewFulfillmentRetryJob(deliverPendingHandler, retrySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.fulfillmentRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment retry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fulfillmentRetryJob.Stop()
}
