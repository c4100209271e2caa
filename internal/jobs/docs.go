// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required by the order lifecycle.
//
// # Available Jobs
//
// 1. CleanupJob - Runs daily at midnight to force stale orders into the
// terminal status and soft-delete them, then invalidates the active-orders
// cache entry.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 0 0 * * *" (seconds-aware
// schedule, daily at midnight). The sweep is idempotent: a second consecutive
// run finds nothing to clear because cleared orders drop out of the stale
// query's scope.
//
// # Error Handling
//
// The cleanup job logs failures and leaves retries to the next scheduled run;
// a partial failure rolls back with the transaction, so no order is half
// cleared.
package jobs
