// Package refund contains the Refund aggregate created when a completed
// order is refunded. A refund starts in Pending status and is advanced by
// downstream payment processing, which is outside this core.
package refund

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrRefundIsNotConstructed is returned when a Refund was not created via
// NewRefund or RestoreRefund.
var ErrRefundIsNotConstructed = errors.New("Refund must be created via NewRefund or RestoreRefund")

// DefaultProcessingEstimate is the customer-facing processing time estimate
// attached to newly created refunds.
const DefaultProcessingEstimate = "3-5 business days"

// Status represents the processing state of a refund.
type Status int

const (
	// Unknown represents an invalid or undefined refund status.
	Unknown Status = iota

	// Pending is the initial status of a newly created refund.
	Pending

	// Processing indicates the refund was picked up by payment processing.
	Processing

	// Completed indicates the money was returned to the customer.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
	}
}

// Validate checks if the Status is one of the defined refund states.
func (s Status) Validate() error {
	if s != Pending && s != Processing && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"refund status",
			fmt.Errorf("%d is not a valid refund status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Refund records a monetary refund against a completed order.
type Refund struct {
	id                 kernel.UUID
	orderID            kernel.UUID
	amount             kernel.Money
	reason             string
	method             string
	status             Status
	processingEstimate string
	createdAt          time.Time

	isConstructed bool
}

// NewRefund creates a refund record in Pending status.
// The amount must be positive; reason and method are required.
// The amount-to-order-total comparison belongs to the Order aggregate,
// which guards the Completed -> Refunded transition.
func NewRefund(orderID kernel.UUID, amount kernel.Money, reason, method string) (*Refund, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, errs.NewValueIsRequiredError("refund amount")
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if method == "" {
		return nil, errs.NewValueIsRequiredError("method")
	}

	return &Refund{
		id:                 kernel.NewUUID(),
		orderID:            orderID,
		amount:             amount,
		reason:             reason,
		method:             method,
		status:             Pending,
		processingEstimate: DefaultProcessingEstimate,
		createdAt:          time.Now().UTC(),
		isConstructed:      true,
	}, nil
}

// RestoreRefund reconstructs a refund from persistence.
func RestoreRefund(
	id, orderID kernel.UUID,
	amount kernel.Money,
	reason, method string,
	status Status,
	processingEstimate string,
	createdAt time.Time,
) (*Refund, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Refund{
		id:                 id,
		orderID:            orderID,
		amount:             amount,
		reason:             reason,
		method:             method,
		status:             status,
		processingEstimate: processingEstimate,
		createdAt:          createdAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the refund was created through a constructor.
func (r *Refund) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRefundIsNotConstructed
	}
	return nil
}

// ID returns the refund's unique identifier.
func (r *Refund) ID() kernel.UUID {
	return r.id
}

// OrderID returns the refunded order's identifier.
func (r *Refund) OrderID() kernel.UUID {
	return r.orderID
}

// Amount returns the refunded amount.
func (r *Refund) Amount() kernel.Money {
	return r.amount
}

// Reason returns the refund reason.
func (r *Refund) Reason() string {
	return r.reason
}

// Method returns the refund method tag.
func (r *Refund) Method() string {
	return r.method
}

// Status returns the refund processing status.
func (r *Refund) Status() Status {
	return r.status
}

// ProcessingEstimate returns the customer-facing processing time estimate.
func (r *Refund) ProcessingEstimate() string {
	return r.processingEstimate
}

// CreatedAt returns the refund creation timestamp.
func (r *Refund) CreatedAt() time.Time {
	return r.createdAt
}
