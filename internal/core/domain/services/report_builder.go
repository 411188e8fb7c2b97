package services

import (
	"sort"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// dateLayout is the day granularity used for daily statistics.
const dateLayout = "2006-01-02"

// OrderSummary is the per-order input row for report aggregation.
// Query handlers produce it from persisted orders; the builder never
// touches storage itself.
type OrderSummary struct {
	CreatedAt     time.Time
	Status        order.Status
	PaymentMethod string
	Total         kernel.Money
}

// DailyStat aggregates the orders of one calendar day.
type DailyStat struct {
	Date       string
	OrderCount int
	Revenue    float64
}

// OrderReport is the derived operational report over a filtered order set.
// It is recomputed on demand and never persisted.
//
// Invariants maintained by ReportBuilder:
//   - AverageOrderValue is 0 when TotalOrders is 0
//   - breakdown maps contain keys only for counts greater than zero
//   - the sum of StatusBreakdown values equals TotalOrders
//   - the sum of DailyStat order counts equals TotalOrders
//   - DailyStats is sorted ascending by date
type OrderReport struct {
	TotalOrders            int
	TotalRevenue           float64
	AverageOrderValue      float64
	StatusBreakdown        map[string]int
	PaymentMethodBreakdown map[string]int
	DailyStats             []DailyStat
}

// ReportBuilder is a domain service computing order statistics.
// It is pure: the same input rows always produce the same report.
type ReportBuilder struct{}

// NewReportBuilder creates a new ReportBuilder instance.
func NewReportBuilder() ReportBuilder {
	return ReportBuilder{}
}

// Build aggregates the given order summaries into an OrderReport.
//
// Revenue figures are accumulated in cents and converted to major units
// once at the end, so float rounding never affects the totals.
func (b ReportBuilder) Build(summaries []OrderSummary) OrderReport {
	report := OrderReport{
		TotalOrders:            len(summaries),
		StatusBreakdown:        make(map[string]int),
		PaymentMethodBreakdown: make(map[string]int),
		DailyStats:             make([]DailyStat, 0),
	}

	var totalCents int64
	dailyCents := make(map[string]int64)
	dailyCounts := make(map[string]int)

	for _, summary := range summaries {
		totalCents += summary.Total.Cents()
		report.StatusBreakdown[summary.Status.String()]++
		if summary.PaymentMethod != "" {
			report.PaymentMethodBreakdown[summary.PaymentMethod]++
		}

		day := summary.CreatedAt.UTC().Format(dateLayout)
		dailyCents[day] += summary.Total.Cents()
		dailyCounts[day]++
	}

	report.TotalRevenue = float64(totalCents) / 100
	if report.TotalOrders > 0 {
		report.AverageOrderValue = float64(totalCents) / float64(report.TotalOrders) / 100
	}

	days := make([]string, 0, len(dailyCounts))
	for day := range dailyCounts {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		report.DailyStats = append(report.DailyStats, DailyStat{
			Date:       day,
			OrderCount: dailyCounts[day],
			Revenue:    float64(dailyCents[day]) / 100,
		})
	}

	return report
}
