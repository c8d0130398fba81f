package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the sweep at the start of every minute.
const DefaultExpirySchedule = "0 * * * * *"

// PendingOrdersExpirer handles ExpirePendingOrdersCommand.
type PendingOrdersExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// PendingOrderExpiryJob cancels orders that stayed Pending for longer than ttl.
type PendingOrderExpiryJob struct {
	handler  PendingOrdersExpirer
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrderExpiryJob creates the expiry job. The schedule is a cron
// expression with a leading seconds field; an empty one means DefaultExpirySchedule.
func NewPendingOrderExpiryJob(
	handler PendingOrdersExpirer,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}

	return &PendingOrderExpiryJob{
		handler:  handler,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_order_expiry_job"),
	}
}

// Start validates the configuration and schedules the sweep.
func (j *PendingOrderExpiryJob) Start() error {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.ttl)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.Run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one sweep.
func (j *PendingOrderExpiryJob) Run(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) {
	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err, "expired", expired)
		return
	}

	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired pending orders", "expired", expired)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
