package queries

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrGenerateReportQueryIsNotConstructed = errors.New(
	"GenerateReportQuery must be created via NewGenerateReportQuery constructor",
)

// GenerateReportQuery computes an aggregated order report over a filtered
// order set. All filters are optional; zero values mean "no filter".
// The from/to bounds are inclusive calendar dates.
//
// Example:
//
//	from, _ := time.Parse("2006-01-02", "2026-01-01")
//	query, _ := NewGenerateReportQuery(from, time.Time{}, order.Completed, "", "")
//	report, err := handler.Handle(ctx, query)
type GenerateReportQuery struct { //nolint:recvcheck //using for validation
	from          time.Time
	to            time.Time
	status        order.Status
	paymentMethod string
	customerID    string

	guard guard.ConstructorGuard
}

// NewGenerateReportQuery creates a validated report query.
// Pass zero values (zero time, order.Unknown, empty strings) to leave a
// filter unset. When both bounds are set, from must not be after to.
func NewGenerateReportQuery(
	from, to time.Time,
	status order.Status,
	paymentMethod string,
	customerID string,
) (GenerateReportQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GenerateReportQuery{}, err
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return GenerateReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("from %s is after to %s",
				from.Format("2006-01-02"), to.Format("2006-01-02")),
		)
	}

	return GenerateReportQuery{
		from:          from,
		to:            to,
		status:        status,
		paymentMethod: paymentMethod,
		customerID:    customerID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GenerateReportQuery) Validate() error {
	return q.guard.Validate(ErrGenerateReportQueryIsNotConstructed)
}

// From returns the inclusive lower date bound, zero when unset.
func (q GenerateReportQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper date bound, zero when unset.
func (q GenerateReportQuery) To() time.Time {
	return q.to
}

// Status returns the status filter, order.Unknown when unset.
func (q GenerateReportQuery) Status() order.Status {
	return q.status
}

// PaymentMethod returns the payment method filter, empty when unset.
func (q GenerateReportQuery) PaymentMethod() string {
	return q.paymentMethod
}

// CustomerID returns the customer filter, empty when unset.
func (q GenerateReportQuery) CustomerID() string {
	return q.customerID
}
