package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Action names recorded in audit entries and transition errors.
const (
	ActionApprove        = "approve"
	ActionShip           = "ship"
	ActionComplete       = "complete"
	ActionConfirmReceipt = "confirm-receipt"
	ActionCancel         = "cancel"
	ActionRefund         = "refund"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Approved ──> Shipping ──> Completed ──> Refunded
//	   │            │            (complete / confirm-receipt)
//	   └────────────┴──> Cancelled
//
// Staff may cancel Pending and Approved orders; customers may cancel
// Pending orders only. Cancelled and Refunded are final states.
//
// Status is a value object: transition methods return the next status
// without mutating the receiver, and an InvalidTransitionError when the
// action is not legal from the current state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Orders in this status await staff approval.
	Pending

	// Approved indicates staff accepted the order for fulfillment.
	Approved

	// Shipping indicates the order was handed to a carrier.
	Shipping

	// Completed indicates the order reached the customer.
	Completed

	// Cancelled indicates the order was cancelled before shipping.
	// This is a final state.
	Cancelled

	// Refunded indicates a completed order was refunded.
	// This is a final state.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Approved:  "Approved",
		Shipping:  "Shipping",
		Completed: "Completed",
		Cancelled: "Cancelled",
		Refunded:  "Refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Approved:  "Approved",
		Shipping:  "Shipping",
		Completed: "Completed",
		Cancelled: "Cancelled",
		Refunded:  "Refunded",
	}
}

// StatusFromString parses a status name as stored or supplied by callers.
// Returns an error for names outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionApprove)
	}
	return Approved, nil
}

// Ship transitions the status to Shipping.
//
// Valid transitions:
//   - Approved -> Shipping
func (s Status) Ship() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionShip)
	}
	return Shipping, nil
}

// Complete transitions the status to Completed (staff-recorded delivery).
//
// Valid transitions:
//   - Shipping -> Completed
func (s Status) Complete() (Status, error) {
	if s != Shipping {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionComplete)
	}
	return Completed, nil
}

// ConfirmReceipt transitions the status to Completed (customer-confirmed delivery).
//
// Valid transitions:
//   - Shipping -> Completed
func (s Status) ConfirmReceipt() (Status, error) {
	if s != Shipping {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionConfirmReceipt)
	}
	return Completed, nil
}

// CancelByStaff transitions the status to Cancelled on behalf of staff.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Approved -> Cancelled
func (s Status) CancelByStaff() (Status, error) {
	if s != Pending && s != Approved {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionCancel)
	}
	return Cancelled, nil
}

// CancelByCustomer transitions the status to Cancelled on behalf of the customer.
// The customer contract is narrower than the staff one: once an order is
// approved only staff may cancel it.
//
// Valid transitions:
//   - Pending -> Cancelled
func (s Status) CancelByCustomer() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionCancel)
	}
	return Cancelled, nil
}

// Refund transitions the status to Refunded.
//
// Valid transitions:
//   - Completed -> Refunded
func (s Status) Refund() (Status, error) {
	if s != Completed {
		return 0, errs.NewInvalidTransitionError(s.String(), ActionRefund)
	}
	return Refunded, nil
}
