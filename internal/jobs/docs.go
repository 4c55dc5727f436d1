// Package jobs provides scheduled background tasks for the order processing
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. AnalysisCompletionJob - Periodically finishes analyses that have been
// running long enough, marking their documents accordingly.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, completeAnalysisHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Completion failures for one analysis do not stop the sweep; each failure
// is logged and the job moves on to the next candidate.
package jobs
