// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the plowing service.
//
// # Available Jobs
//
// 1. WaitlistExpiryJob - Runs hourly to expire waitlist entries that have been
// waiting longer than the configured TTL.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireWaitlistHandler, waitlistTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry sweep skips entries that were promoted between the stale read and
// the expiry write, so a lost race never fails the whole run.
package jobs
