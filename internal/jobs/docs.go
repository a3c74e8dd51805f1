// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order creation pipeline.
//
// # Available Jobs
//
// 1. StatsReportJob - Runs every minute to log order creation counters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required sources
//	jobManager := jobs.NewJobManager(metricsEmitter, logger)
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
// The stats job only reads in-memory counters, so the sole failure mode is
// scheduler registration, surfaced by StartAll.
package jobs
