package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reportExportJob *ReportExportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	reportHandler queries.GenerateReportQueryHandler,
	exporter ReportExporter,
	exportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reportExportJob: NewReportExportJob(reportHandler, exporter, exportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reportExportJob.Start(); err != nil {
		return fmt.Errorf("failed to start report export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reportExportJob.Stop()
}
