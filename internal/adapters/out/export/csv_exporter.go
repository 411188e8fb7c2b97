// Package export writes generated order reports to local files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"orderflow/internal/core/domain/services"
)

// CSVReportExporter writes one CSV file per exported report into a target
// directory. Existing files for the same day are overwritten, so re-running
// an export is idempotent.
type CSVReportExporter struct {
	dir string
}

// NewCSVReportExporter creates an exporter targeting the given directory.
func NewCSVReportExporter(dir string) *CSVReportExporter {
	return &CSVReportExporter{dir: dir}
}

// Export writes the report as orders-report-YYYY-MM-DD.csv and returns the
// file path.
func (e *CSVReportExporter) Export(
	ctx context.Context,
	day time.Time,
	report services.OrderReport,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(e.dir, "orders-report-"+day.Format("2006-01-02")+".csv")

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	records := [][]string{
		{"section", "key", "value"},
		{"summary", "total_orders", strconv.Itoa(report.TotalOrders)},
		{"summary", "total_revenue", formatAmount(report.TotalRevenue)},
		{"summary", "average_order_value", formatAmount(report.AverageOrderValue)},
	}
	records = append(records, breakdownRecords("status", report.StatusBreakdown)...)
	records = append(records, breakdownRecords("payment_method", report.PaymentMethodBreakdown)...)
	for _, stat := range report.DailyStats {
		records = append(records,
			[]string{"daily", stat.Date, strconv.Itoa(stat.OrderCount)},
			[]string{"daily_revenue", stat.Date, formatAmount(stat.Revenue)},
		)
	}

	if err = w.WriteAll(records); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

// breakdownRecords renders one breakdown map with stable key ordering.
func breakdownRecords(section string, breakdown map[string]int) [][]string {
	keys := make([]string, 0, len(breakdown))
	for key := range breakdown {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([][]string, 0, len(keys))
	for _, key := range keys {
		records = append(records, []string{section, key, strconv.Itoa(breakdown[key])})
	}
	return records
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
