package commands

import (
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// StatusChange is the tagged payload variant for a status transition action.
// Each action has its own payload type carrying exactly the fields that
// action requires; the variant is validated before the state machine is
// ever consulted, so a malformed payload can never touch an order.
type StatusChange interface {
	// Action returns the action name recorded in audit entries and errors.
	Action() string

	// validate checks the action-specific required fields.
	validate() error
}

// ApproveChange approves a pending order. The acting staff member is the
// command's actor; no extra payload is required.
type ApproveChange struct{}

// Action implements StatusChange.
func (ApproveChange) Action() string { return order.ActionApprove }

func (ApproveChange) validate() error { return nil }

// ShipChange hands an approved order to a carrier.
type ShipChange struct {
	TrackingNumber    string
	EstimatedDelivery time.Time
}

// Action implements StatusChange.
func (ShipChange) Action() string { return order.ActionShip }

func (c ShipChange) validate() error {
	if c.TrackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if c.EstimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimated delivery")
	}
	return nil
}

// CompleteChange records carrier-confirmed delivery of a shipping order.
type CompleteChange struct{}

// Action implements StatusChange.
func (CompleteChange) Action() string { return order.ActionComplete }

func (CompleteChange) validate() error { return nil }

// CancelChange cancels an order on behalf of staff.
type CancelChange struct {
	Reason string
}

// Action implements StatusChange.
func (CancelChange) Action() string { return order.ActionCancel }

func (c CancelChange) validate() error {
	if c.Reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return nil
}

// StatusChangeFromAction maps a wire-level action name to its payload
// variant. Transport adapters use it to turn untyped requests into tagged
// payloads; unknown actions are rejected here, before any domain code runs.
func StatusChangeFromAction(
	action string,
	trackingNumber string,
	estimatedDelivery time.Time,
	reason string,
) (StatusChange, error) {
	switch action {
	case order.ActionApprove:
		return ApproveChange{}, nil
	case order.ActionShip:
		return ShipChange{TrackingNumber: trackingNumber, EstimatedDelivery: estimatedDelivery}, nil
	case order.ActionComplete:
		return CompleteChange{}, nil
	case order.ActionCancel:
		return CancelChange{Reason: reason}, nil
	default:
		return nil, errs.NewValueIsInvalidError("action")
	}
}
