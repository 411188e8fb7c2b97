package cmd

import "time"

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// BulkPerOrderTimeout bounds each task of a bulk status update.
	// Zero disables the bound.
	BulkPerOrderTimeout time.Duration

	// ExportSchedule is the cron expression for the daily report export.
	ExportSchedule string

	// ExportDirectory is where report CSV files are written.
	ExportDirectory string
}
