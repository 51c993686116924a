// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. DeliveryProgressionJob - Runs every 30 seconds to advance confirmed
// orders through preparing and out_for_delivery to delivered, driven by
// order age against the delivery estimate.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceDeliveriesHandler, logger)
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
// Per-order failures inside a run are logged and skipped by the command
// handler; the job only logs errors that abort a whole run.
package jobs
