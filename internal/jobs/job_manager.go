package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrderExpiryJob *PendingOrderExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expirer PendingOrdersExpirer,
	pendingOrderTTL time.Duration,
	expirySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderExpiryJob: NewPendingOrderExpiryJob(expirer, pendingOrderTTL, expirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderExpiryJob.Stop()
}
