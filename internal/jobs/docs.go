// Package jobs provides scheduled background tasks for the auto service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueScanJob - Runs hourly to find unsettled orders whose estimate date
// has passed, log the count, and notify the affected customers.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listOverdueOrdersHandler, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Scan failures are logged and retried on the next tick; a single failed
// notification does not abort the rest of the scan.
package jobs
