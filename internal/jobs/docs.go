// Package jobs provides scheduled background tasks.
//
// The only job is OrderReportJob, a read-only report built on
// github.com/robfig/cron/v3: once a minute it logs how many orders sit in
// each status. Jobs never mutate orders; every state change goes through a
// command handler.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(statusCountsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
