package jobs

import (
	"fmt"
	"log/slog"

	"linkmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderReminderJob *StaleOrderReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	notifyStaleOrdersHandler commands.NotifyStaleOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderReminderJob: NewStaleOrderReminderJob(notifyStaleOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderReminderJob.Stop()
}
