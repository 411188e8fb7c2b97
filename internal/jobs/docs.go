// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// ReportExportJob generates the previous day's order report and hands it
// to a ReportExporter on a configurable cron schedule. Jobs are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(reportHandler, exporter, "0 5 * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Job runs never propagate errors; failures are logged and the next tick
// retries from scratch.
package jobs
