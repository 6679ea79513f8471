// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order service.
//
// # Available Jobs
//
// 1. StaleOrderReminderJob - Runs hourly to remind publishers about requested
// orders that have gone unanswered for a day
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notifyStaleOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs sweep failures and keeps its schedule; a failed run
// is retried on the next tick rather than stopping the job.
package jobs
