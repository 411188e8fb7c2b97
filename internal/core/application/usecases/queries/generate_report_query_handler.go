package queries

import (
	"context"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"

	"gorm.io/gorm"
)

// GenerateReportQueryHandler computes order statistics straight from the
// database. Row filtering happens in SQL; the arithmetic is delegated to
// the pure services.ReportBuilder so it stays testable without a database.
//
// Example:
//
//	handler := NewGenerateReportQueryHandler(db)
//	query, _ := NewGenerateReportQuery(time.Time{}, time.Time{}, order.Unknown, "", "")
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, %.2f revenue\n", report.TotalOrders, report.TotalRevenue)
type GenerateReportQueryHandler struct {
	db      *gorm.DB
	builder services.ReportBuilder
}

// NewGenerateReportQueryHandler creates a handler for report queries.
func NewGenerateReportQueryHandler(db *gorm.DB) GenerateReportQueryHandler {
	return GenerateReportQueryHandler{db: db, builder: services.NewReportBuilder()}
}

// Handle executes the filtered aggregation and returns the report.
// An empty result set yields a zero report, not an error.
func (h GenerateReportQueryHandler) Handle(
	ctx context.Context,
	query GenerateReportQuery,
) (services.OrderReport, error) {
	if err := query.Validate(); err != nil {
		return services.OrderReport{}, err
	}

	sql, args := buildReportSQL(query)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return services.OrderReport{}, err
	}
	defer rows.Close()

	summaries := make([]services.OrderSummary, 0)

	for rows.Next() {
		var (
			createdAt     time.Time
			status        int
			paymentMethod string
			totalCents    int64
		)

		if err = rows.Scan(&createdAt, &status, &paymentMethod, &totalCents); err != nil {
			return services.OrderReport{}, err
		}

		total, moneyErr := kernel.NewMoney(totalCents)
		if moneyErr != nil {
			return services.OrderReport{}, moneyErr
		}

		summaries = append(summaries, services.OrderSummary{
			CreatedAt:     createdAt,
			Status:        order.Status(status),
			PaymentMethod: paymentMethod,
			Total:         total,
		})
	}

	if err = rows.Err(); err != nil {
		return services.OrderReport{}, err
	}

	return h.builder.Build(summaries), nil
}

// buildReportSQL assembles the filtered row query. The from/to bounds are
// inclusive calendar days, so the upper bound becomes an exclusive
// next-day comparison.
func buildReportSQL(query GenerateReportQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			created_at,
			status,
			payment_method,
			total_cents
		FROM orders
		WHERE 1=1`)

	args := make([]any, 0, 4)

	if !query.From().IsZero() {
		sb.WriteString(" AND created_at >= ?")
		args = append(args, dayStart(query.From()))
	}
	if !query.To().IsZero() {
		sb.WriteString(" AND created_at < ?")
		args = append(args, dayStart(query.To()).AddDate(0, 0, 1))
	}
	if query.Status() != order.Unknown {
		sb.WriteString(" AND status = ?")
		args = append(args, int(query.Status()))
	}
	if query.PaymentMethod() != "" {
		sb.WriteString(" AND payment_method = ?")
		args = append(args, query.PaymentMethod())
	}
	if query.CustomerID() != "" {
		sb.WriteString(" AND customer_id = ?")
		args = append(args, query.CustomerID())
	}

	sb.WriteString(" ORDER BY created_at")

	return sb.String(), args
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
