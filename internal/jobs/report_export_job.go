package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// ReportExporter receives the finished daily report and writes it somewhere
// durable. The returned destination is used for logging only.
type ReportExporter interface {
	Export(ctx context.Context, day time.Time, report services.OrderReport) (string, error)
}

// ReportExportJob periodically generates the previous day's order report
// and hands it to the exporter. The schedule is a standard 5-field cron
// expression supplied by configuration.
type ReportExportJob struct {
	handler  queries.GenerateReportQueryHandler
	exporter ReportExporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReportExportJob creates a scheduled report export job.
func NewReportExportJob(
	handler queries.GenerateReportQueryHandler,
	exporter ReportExporter,
	schedule string,
	logger *slog.Logger,
) *ReportExportJob {
	return &ReportExportJob{
		handler:  handler,
		exporter: exporter,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "report_export_job"),
	}
}

// Start schedules the job. Returns an error for an invalid cron expression.
func (j *ReportExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background(), time.Now().UTC().AddDate(0, 0, -1))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "report export job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report export job.
func (j *ReportExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "report export job stopped")
}

// Run generates and exports the report for one calendar day.
// Failures are logged, never propagated: the next tick simply tries again.
func (j *ReportExportJob) Run(ctx context.Context, day time.Time) {
	query, err := queries.NewGenerateReportQuery(day, day, order.Unknown, "", "")
	if err != nil {
		j.logger.ErrorContext(ctx, "report export query rejected", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "report generation failed", "error", err)
		return
	}

	destination, err := j.exporter.Export(ctx, day, report)
	if err != nil {
		j.logger.ErrorContext(ctx, "report export failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "report exported",
		"day", day.Format("2006-01-02"),
		"orders", report.TotalOrders,
		"destination", destination)
}
