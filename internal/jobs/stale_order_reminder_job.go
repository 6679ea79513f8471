package jobs

import (
	"context"
	"log/slog"
	"time"

	"linkmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long an order may sit in the requested status before its
// publisher gets a reminder.
const staleAfter = 24 * time.Hour

// StaleOrderReminderJob periodically re-notifies publishers about requested
// orders they have not reacted to. The job never changes order state, it only
// repeats the notification the publisher received when the order was placed.
type StaleOrderReminderJob struct {
	handler commands.NotifyStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderReminderJob creates a job that sweeps for stale requested orders.
func NewStaleOrderReminderJob(handler commands.NotifyStaleOrdersCommandHandler, logger *slog.Logger) *StaleOrderReminderJob {
	return &StaleOrderReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_reminder_job"),
	}
}

// Start schedules the reminder sweep to run at the top of every hour.
func (j *StaleOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewNotifyStaleOrdersCommand(staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order reminder job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder sweep.
func (j *StaleOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order reminder job stopped")
}
