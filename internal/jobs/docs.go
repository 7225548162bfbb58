// Package jobs provides scheduled background tasks for the lab system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required for the lab workflow.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs daily at midnight to cancel draft orders whose
// order date has passed without being placed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelExpiredOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
